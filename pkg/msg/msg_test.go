package msg_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"todo-api/pkg/msg"
)

func writeCatalog(assert *assert.Assertions, dir string) string {
	path := filepath.Join(dir, "messages.yml")
	content := []byte(`
todo:
  flash:
    deleted: "Todo {0} deleted"
  cron:
    overdue: "{0} overdue todos as of {1}"
app:
  start: "started"
`)
	assert.Nil(os.WriteFile(path, content, 0o600))

	return path
}

func TestGetMessage(t *testing.T) {
	assert := assert.New(t)
	msg.Init(writeCatalog(assert, t.TempDir()))

	assert.Equal("started", msg.GetMessage("app.start"))
	assert.Equal("Todo 7 deleted", msg.GetMessage("todo.flash.deleted", 7))
	assert.Equal("3 overdue todos as of 2026-01-01", msg.GetMessage("todo.cron.overdue", 3, "2026-01-01"))
}

func TestGetMessageUnknownKeyFallsBack(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("no.such.key", msg.GetMessage("no.such.key"))
}
