package rotation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dhkin/rotation"
)

func TestOrder(t *testing.T) {
	t.Parallel()

	require.True(t, rotation.OrderXYZ.Valid())
	require.True(t, rotation.OrderZYX.Valid())
	require.False(t, rotation.Order(0).Valid())
	require.False(t, rotation.Order(3).Valid())

	require.Equal(t, "XYZ", rotation.OrderXYZ.String())
	require.Equal(t, "ZYX", rotation.OrderZYX.String())
	require.Equal(t, "Order(7)", rotation.Order(7).String())
}

func TestTrot_Dispatch(t *testing.T) {
	t.Parallel()

	m, err := rotation.Trot(rotation.OrderXYZ, 0.1, 0.2, 0.3)
	require.NoError(t, err)
	require.Equal(t, rotation.Trotxyz(0.1, 0.2, 0.3), m)

	// angles are given as (x, y, z) for both orders
	m, err = rotation.Trot(rotation.OrderZYX, 0.1, 0.2, 0.3)
	require.NoError(t, err)
	require.Equal(t, rotation.Trotzyx(0.3, 0.2, 0.1), m)

	_, err = rotation.Trot(rotation.Order(5), 0, 0, 0)
	require.ErrorIs(t, err, rotation.ErrUnknownOrder)
}
