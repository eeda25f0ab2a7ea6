package debug

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/fixcik/yexp/encode"
	"github.com/fixcik/yexp/ir"
)

var out io.Writer = os.Stderr

// Doc prints its node as YAML under %s.
type Doc struct{ *ir.Node }

func (y Doc) String() string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(y.Node, buf); err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", y.Node)
	}
	return buf.String()
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(out, msg, args...)
}
