package translate

import "fmt"

// UnhandledBlockClass is warned about, not raised: translation proceeds
// with the offending design block skipped (§4.4, §9 open question
// resolution: silent skip at translation, fatal only later in Planning if
// the surviving graph needs the connection).
type UnhandledBlockClass struct {
	Tag  string
	Path string
}

func (w UnhandledBlockClass) String() string {
	return fmt.Sprintf("no factory registered for class tag %q (block %q); it will be skipped", w.Tag, w.Path)
}
