package config

import (
	"fmt"
	"io"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/repoloc/pkg/errors"
)

const generatedHeader = `# repoloc configuration
#
# Search order: $XDG_CONFIG_HOME/repoloc/repoloc.toml, then ./repoloc.toml.
# Every value can be overridden with a REPOLOC_* environment variable,
# e.g. REPOLOC_PROXY_URL or REPOLOC_HTTP_TIMEOUT.

`

// Generate writes a config file populated with the built-in defaults,
// suitable as a starting point for customization.
func Generate(w io.Writer) error {
	if _, err := fmt.Fprint(w, generatedHeader); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to write config header")
	}

	data, err := gotoml.Marshal(Default())
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to marshal default config")
	}

	if _, err := w.Write(data); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to write config")
	}
	return nil
}
