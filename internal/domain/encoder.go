package domain

import (
	"context"
	"fmt"
)

// VectorEncoder maps a person's weighted interest selections onto a vector
// indexed by catalog position. Encoding is deterministic and independent of
// the input ordering.
type VectorEncoder struct {
	catalog InterestCatalog
}

// NewVectorEncoder creates a new VectorEncoder backed by the given catalog.
func NewVectorEncoder(catalog InterestCatalog) VectorEncoder {
	return VectorEncoder{catalog: catalog}
}

// Encode builds the vector values for the given selections. The second return
// is false when the person has no selection with a level above zero; in that
// case no vector exists (absence, not a zero vector). Positions the person has
// not selected, including interests added to the catalog later, are zero.
func (ve VectorEncoder) Encode(ctx context.Context, selections []PersonInterestSelection) ([]float64, bool, error) {
	weighted := make([]PersonInterestSelection, 0, len(selections))
	for _, sel := range selections {
		if err := sel.Validate(); err != nil {
			return nil, false, err
		}
		if sel.Level > 0 {
			weighted = append(weighted, sel)
		}
	}
	if len(weighted) == 0 {
		return nil, false, nil
	}

	size, err := ve.catalog.GetCatalogSize(ctx)
	if err != nil {
		return nil, false, err
	}

	values := make([]float64, size)
	for _, sel := range weighted {
		pos, found, err := ve.catalog.GetCatalogPosition(ctx, sel.InterestID)
		if err != nil {
			return nil, false, err
		}
		if !found {
			return nil, false, NewValidationErr(fmt.Sprintf("interest %s has no catalog position", sel.InterestID))
		}
		if pos < 0 || pos >= size {
			return nil, false, NewValidationErr(fmt.Sprintf("catalog position %d of interest %s is outside the catalog size %d", pos, sel.InterestID, size))
		}
		values[pos] = sel.Level
	}

	return values, true, nil
}
