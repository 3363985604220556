package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExecuteTemplate(t *testing.T) {
	out, err := ExecuteTemplate("test", `<p>{{.}}</p>`, "<b>Error: user rejected</b>")
	require.NoError(t, err)
	require.Equal(t, "<p>&lt;b&gt;Error: user rejected&lt;/b&gt;</p>", out)

	_, err = ExecuteTemplate("test", `{{.Missing`, nil)
	require.Error(t, err)
}
