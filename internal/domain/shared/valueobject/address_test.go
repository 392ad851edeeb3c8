package valueobject_test

import (
	"encoding/json"
	"testing"

	"github.com/pabloarenaso/Criemos-visor-pedidos/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("creates address with required fields", func(t *testing.T) {
		addr, err := valueobject.NewAddress("Maria", "Lopez", "Calle Mayor 1", "Madrid", "Madrid", "28001")
		require.NoError(t, err)
		assert.Equal(t, "Maria", addr.FirstName())
		assert.Equal(t, "Calle Mayor 1", addr.Address1())
		assert.Equal(t, "28001", addr.PostalCode())
		assert.False(t, addr.IsEmpty())
	})

	t.Run("rejects blank address line 1", func(t *testing.T) {
		_, err := valueobject.NewAddress("Maria", "Lopez", "  ", "Madrid", "Madrid", "28001")
		assert.ErrorIs(t, err, valueobject.ErrAddressLineRequired)
	})

	t.Run("trims whitespace", func(t *testing.T) {
		addr, err := valueobject.NewAddress(" Ana ", " Ruiz ", " Av. Sol 22 ", " Sevilla ", "", "")
		require.NoError(t, err)
		assert.Equal(t, "Ana", addr.FirstName())
		assert.Equal(t, "Av. Sol 22", addr.Address1())
		assert.Equal(t, "Sevilla", addr.City())
	})

	t.Run("options set line 2 and phone", func(t *testing.T) {
		addr, err := valueobject.NewAddress("", "", "Calle Luna 5", "Bilbao", "", "",
			valueobject.WithAddress2("Piso 2 B"),
			valueobject.WithPhone("+34 600 000 000"),
		)
		require.NoError(t, err)
		assert.Equal(t, "Piso 2 B", addr.Address2())
		assert.Equal(t, "+34 600 000 000", addr.Phone())
	})
}

func TestAddressRecipientName(t *testing.T) {
	addr := valueobject.MustNewAddress("Maria", "Lopez", "Calle Mayor 1", "Madrid", "", "")
	assert.Equal(t, "Maria Lopez", addr.RecipientName())
	assert.True(t, addr.HasRecipientName())

	unnamed := valueobject.MustNewAddress("", "", "Calle Mayor 1", "Madrid", "", "")
	assert.Equal(t, "", unnamed.RecipientName())
	assert.False(t, unnamed.HasRecipientName())

	borrowed := unnamed.WithRecipientName("Pedro", "Santos")
	assert.Equal(t, "Pedro Santos", borrowed.RecipientName())
	// Original is unchanged
	assert.False(t, unnamed.HasRecipientName())
}

func TestAddressLines(t *testing.T) {
	t.Run("full address", func(t *testing.T) {
		addr := valueobject.MustNewAddress("Maria", "Lopez", "Calle Mayor 1", "Madrid", "Madrid", "28001",
			valueobject.WithAddress2("3A"),
			valueobject.WithPhone("600111222"),
		)
		assert.Equal(t, []string{
			"Maria Lopez",
			"Calle Mayor 1",
			"3A",
			"Madrid, Madrid",
			"28001",
			"600111222",
		}, addr.Lines())
	})

	t.Run("skips blank fields", func(t *testing.T) {
		addr := valueobject.MustNewAddress("", "", "Av. Sol 22", "", "Sevilla", "")
		assert.Equal(t, []string{"Av. Sol 22", "Sevilla"}, addr.Lines())
	})

	t.Run("empty address has no lines", func(t *testing.T) {
		assert.Nil(t, valueobject.EmptyAddress().Lines())
	})
}

func TestAddressEquals(t *testing.T) {
	a := valueobject.MustNewAddress("Maria", "Lopez", "Calle Mayor 1", "Madrid", "Madrid", "28001")
	b := valueobject.MustNewAddress("Maria", "Lopez", "Calle Mayor 1", "Madrid", "Madrid", "28001")
	c := valueobject.MustNewAddress("Maria", "Lopez", "Calle Mayor 2", "Madrid", "Madrid", "28001")

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestAddressJSONRoundTrip(t *testing.T) {
	addr := valueobject.MustNewAddress("Maria", "Lopez", "Calle Mayor 1", "Madrid", "Madrid", "28001",
		valueobject.WithPhone("600111222"),
	)

	data, err := json.Marshal(addr)
	require.NoError(t, err)

	var decoded valueobject.Address
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, addr.Equals(decoded))
}
