package servers_test

import (
	"testing"

	"tableorder/internal/generated/servers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestGetSwagger(t *testing.T) {
	doc, err := servers.GetSwagger()

	require.NoError(t, err)
	assert.Equal(t, "Table Order API", doc.Info.Title)
	for _, path := range []string{
		"/api/v1/bills/{billCode}",
		"/api/v1/orders/{orderId}/status",
		"/api/v1/orders/today/revenue",
		"/api/v1/events",
	} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
}

func TestRegisterSwagger(t *testing.T) {
	require.NoError(t, servers.RegisterSwagger())
	require.NoError(t, servers.RegisterSwagger())

	doc, err := swag.ReadDoc()

	require.NoError(t, err)
	assert.Contains(t, doc, "ChangeOrderStatus")
}
