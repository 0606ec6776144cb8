package interfaces

import (
	"errors"
	"fmt"

	"github.com/ternarybob/advisor/internal/models"
)

// ErrInvalidArgument is returned by the pure computational services when
// given inputs outside their contract. Callers are expected to validate
// user input first, so these fail fast and loudly.
var ErrInvalidArgument = errors.New("invalid argument")

// DataUnavailableError reports that the market-data collaborator returned
// empty or malformed data for an asset class. It is recoverable: the CAGR
// estimate degrades to an absent value carrying this reason.
type DataUnavailableError struct {
	Asset  models.AssetClass
	Symbol string
	Reason string
}

func (e *DataUnavailableError) Error() string {
	if e.Symbol != "" {
		return fmt.Sprintf("market data unavailable for %s (%s): %s", e.Asset, e.Symbol, e.Reason)
	}
	return fmt.Sprintf("market data unavailable for %s: %s", e.Asset, e.Reason)
}
