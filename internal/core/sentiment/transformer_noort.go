//go:build !ORT && !ALL

package sentiment

import perr "postanalyzer/internal/platform/errors"

// openModel is the stub used when the binary is built without the ORT tag
func openModel(string) (classifier, error) {
	return nil, perr.Unavailablef("built without ORT support (rebuild with -tags ORT)")
}
