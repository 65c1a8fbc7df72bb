package rowan

import (
	"fmt"
	"io"
	"os"
)

// debugOutput is where debug logging goes. Tests swap it for a buffer.
var debugOutput io.Writer = os.Stderr

// globalDebug mirrors the most recently enabled InputManager debug flag so
// that node operations (which lack a manager pointer) can check it cheaply.
var globalDebug bool

// debugf prints one line to debugOutput when this manager is in debug mode.
func (im *InputManager) debugf(format string, args ...any) {
	if !im.cfg.Debug {
		return
	}
	_, _ = fmt.Fprintf(debugOutput, "[rowan] "+format+"\n", args...)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("rowan debug: %s on disposed node %q", op, n.Name))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent() {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(debugOutput, "[rowan] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(debugOutput, "[rowan] warning: node %q has %d children (threshold %d)\n",
			n.Name, len(n.children), debugMaxChildCount)
	}
}
