// Code written by hand in the style generated by mockgen for the Factory
// interface (see the //go:generate directive below); kept in sync manually
// since this module does not invoke code generators.
//
//go:generate mockgen -write_package_comment=false -package=translate_test -destination=mock_translate_test.go github.com/oddflow/oddflow/translate Factory
package translate_test

import (
	"reflect"

	"github.com/golang/mock/gomock"
	"github.com/oddflow/oddflow/block"
	"github.com/oddflow/oddflow/design"
	"github.com/oddflow/oddflow/translate"
)

// MockFactory is a mock of the Factory interface.
type MockFactory struct {
	ctrl     *gomock.Controller
	recorder *MockFactoryMockRecorder
}

// MockFactoryMockRecorder is the mock recorder for MockFactory.
type MockFactoryMockRecorder struct {
	mock *MockFactory
}

// NewMockFactory creates a new mock instance.
func NewMockFactory(ctrl *gomock.Controller) *MockFactory {
	mock := &MockFactory{ctrl: ctrl}
	mock.recorder = &MockFactoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockFactory) EXPECT() *MockFactoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockFactory) Create(db *design.DesignBlock) (block.Block, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", db)
	ret0, _ := ret[0].(block.Block)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockFactoryMockRecorder) Create(db interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockFactory)(nil).Create), db)
}

// MapConnections mocks base method.
func (m *MockFactory) MapConnections(b block.Block, db *design.DesignBlock, lookup translate.Lookup) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MapConnections", b, db, lookup)
	ret0, _ := ret[0].(error)
	return ret0
}

// MapConnections indicates an expected call of MapConnections.
func (mr *MockFactoryMockRecorder) MapConnections(b, db, lookup interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MapConnections", reflect.TypeOf((*MockFactory)(nil).MapConnections), b, db, lookup)
}
