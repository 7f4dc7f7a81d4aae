package pdf

import (
	"github.com/unidoc/unipdf/v3/common/license"
)

// SetupLicense applies a metered unidoc key. An empty key is a no-op.
func SetupLicense(key string) error {
	if key == "" {
		return nil
	}
	return license.SetMeteredKey(key)
}
