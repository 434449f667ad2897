package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"topics/templates.md":       {Data: []byte("# Templates\n\nUse {name}.")},
		"topics/option-dry-run.txt": {Data: []byte("Nothing is written.")},
		"topics/nested/lang.md":     {Data: []byte("# Lang")},
		"topics/ignored.json":       {Data: []byte("{}")},
		"elsewhere/not-a-topic.md":  {Data: []byte("# No")},
	}
}

func TestTopicManager_Scan(t *testing.T) {
	tm := New(testFS(), "topics")
	require.NoError(t, tm.Scan())

	assert.Equal(t, []string{"lang", "option-dry-run", "templates"}, tm.ListTopics())

	topic, ok := tm.GetTopic("templates")
	require.True(t, ok)
	assert.Equal(t, "topics/templates.md", topic.FilePath)
	assert.Equal(t, "# Templates\n\nUse {name}.", topic.Content)
}

func TestTopicManager_GetTopic(t *testing.T) {
	tm := New(testFS(), "topics")
	require.NoError(t, tm.Scan())

	for _, name := range []string{"dry-run", "--dry-run", "option-dry-run"} {
		topic, ok := tm.GetTopic(name)
		require.True(t, ok, name)
		assert.Equal(t, "option-dry-run", topic.Name)
	}

	_, ok := tm.GetTopic("missing")
	assert.False(t, ok)
}

func TestTopicManager_MissingRoot(t *testing.T) {
	tm := New(testFS(), "nope")
	require.NoError(t, tm.Scan())
	assert.Empty(t, tm.ListTopics())
}

func TestRawRenderer(t *testing.T) {
	assert.Equal(t, "# x", Raw.Render("# x", ".md"))
}

func TestRendererFunc(t *testing.T) {
	r := RendererFunc(func(content, format string) string { return format + ":" + content })
	assert.Equal(t, ".txt:hi", r.Render("hi", ".txt"))
}

func TestGlamourRendererSkipsNonMarkdown(t *testing.T) {
	r := NewPlainGlamourRenderer()
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))
	assert.Contains(t, r.Render("# Title\n\nbody", ".md"), "Title")
}

func newRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	root := &cobra.Command{Use: "app", Short: "test app", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(&cobra.Command{Use: "sub", Short: "a subcommand", Run: func(*cobra.Command, []string) {}})

	_, err := Initialize(root, testFS(), "topics")
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	return root, buf
}

func TestIntegration_HelpCommand(t *testing.T) {
	t.Run("topic", func(t *testing.T) {
		root, buf := newRoot(t)
		root.SetArgs([]string{"help", "templates"})
		require.NoError(t, root.Execute())
		assert.Equal(t, "# Templates\n\nUse {name}.", buf.String())
	})

	t.Run("topic list", func(t *testing.T) {
		root, buf := newRoot(t)
		root.SetArgs([]string{"help", "topics"})
		require.NoError(t, root.Execute())

		out := buf.String()
		assert.Contains(t, out, "General topics:")
		assert.Contains(t, out, "  templates\n")
		assert.Contains(t, out, "  --dry-run\n")
		assert.Contains(t, out, "Use 'app help <topic>'")
	})

	t.Run("command", func(t *testing.T) {
		root, buf := newRoot(t)
		root.SetArgs([]string{"help", "sub"})
		require.NoError(t, root.Execute())
		assert.Contains(t, buf.String(), "a subcommand")
	})
}
