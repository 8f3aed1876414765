package readme

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/stargazer-dev/stargazer/internal/app"
)

// Writer persists the rendered readme to a file on disk.
// This struct is an adapter for app.ReadmeStore.
type Writer struct {
	path string
	l    logrus.FieldLogger
}

var _ app.ReadmeStore = &Writer{}

// NewWriter creates a writer targeting given path.
func NewWriter(path string, l logrus.FieldLogger) *Writer {
	return &Writer{
		path: path,
		l:    l,
	}
}

// Write stores the document, overwriting any previous version.
func (w *Writer) Write(content []byte) error {
	if err := os.WriteFile(w.path, content, 0644); err != nil {
		return errors.Wrap(err, "writing readme file")
	}
	w.l.Infof("wrote %d bytes to %s", len(content), w.path)

	return nil
}
