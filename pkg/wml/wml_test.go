package wml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benjaminschreck/go-wordml/pkg/wml/xmlnode"
)

const testNS = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" ` +
	`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" ` +
	`xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing" ` +
	`xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"`

// mustNode decodes an XML fragment for tests. The fragment's root must
// declare the namespaces it uses; testNS covers the usual ones.
func mustNode(t *testing.T, src string) *xmlnode.Node {
	t.Helper()
	node, err := xmlnode.Decode(strings.NewReader(src))
	require.NoError(t, err)
	return node
}

func uintPtr(v uint64) *uint64 { return &v }
