package port

import "fmt"

// InvalidConnection reports a violation of the port connection invariants
// (I1/I2): connecting an already-connected Input, disconnecting an
// unconnected one, or a type mismatch between an Input and the Output it is
// connecting to (I3).
type InvalidConnection struct {
	Reason string
}

func (e *InvalidConnection) Error() string {
	return fmt.Sprintf("port: invalid connection: %s", e.Reason)
}

func newInvalidConnection(format string, args ...interface{}) *InvalidConnection {
	return &InvalidConnection{Reason: fmt.Sprintf(format, args...)}
}
