//go:build e2e

package fare_test

import (
	"strings"

	"smartbus/internal/infra/catalog"
	sqlc "smartbus/internal/infra/sqlc/generated"
	"smartbus/internal/usecase/shared"
	"smartbus/tests/common/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// TestCatalogImport - farectl catalog import against a live schema
// =============================================================================

func (s *FareSuite) TestCatalogImport() {
	importer := catalog.NewImporter(sqlc.New())

	s.Run("Normal case: catalog commits in one transaction", func() {
		t := s.T()

		c, err := catalog.Parse(strings.NewReader(`
routes:
  - {id: R03, name: Harbour Line}
ticket_types:
  - {id: 1, name: Single ride, max_uses: 1}
prices:
  - {route: R03, ticket_type: 1, price: 9000}
`))
		require.NoError(t, err)

		sum, err := shared.RunInTx(t.Context(), s.DB, func(tx sqlc.DBTX) (catalog.Summary, error) {
			return importer.Import(t.Context(), tx, c)
		})
		require.NoError(t, err)
		assert.Equal(t, catalog.Summary{Routes: 1, TicketTypes: 1, Prices: 1}, sum)
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "route_ticket_prices", "route_id = $1 AND price = $2", "R03", 9000))
	})

	s.Run("Error case: a rejected row rolls back the whole import", func() {
		t := s.T()

		// unvalidated on purpose: ticket type 99 only fails at the foreign key
		c := &catalog.Catalog{
			Routes: []catalog.Route{{ID: "R04", Name: "Night Owl"}},
			Prices: []catalog.Price{{RouteID: "R04", TicketTypeID: 99, Name: "Ghost", Amount: 1}},
		}

		_, err := shared.RunInTx(t.Context(), s.DB, func(tx sqlc.DBTX) (catalog.Summary, error) {
			return importer.Import(t.Context(), tx, c)
		})
		require.Error(t, err)
		assert.Zero(t, dbtest.CountRows(t, s.DB, "routes", "id = $1", "R04"))
	})
}
