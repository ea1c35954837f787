// Package platform loads element dumps produced by UI automation tools
// or accessibility inspectors.
package platform

import "github.com/mj1618/a11y-cli/model"

// Reader loads the elements of one screen.
type Reader interface {
	// ReadElements returns the flattened, filtered elements selected by opts.
	ReadElements(opts ReadOptions) ([]model.Element, error)
}
