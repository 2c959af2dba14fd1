// Package sphere_test contains unit tests for coordinate equality, the body
// radius table, and the haversine cost against reference distances.
package sphere_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astrorover/spherenav/sphere"
)

func TestPoint_Equal_Exact(t *testing.T) {
	// Equality is exact field equality; no epsilon tolerance.
	p0 := sphere.NewPoint(20.99, 10.12)
	p1 := sphere.NewPoint(2098, 10.12)
	p2 := sphere.NewPoint(20.99, 10.12)

	assert.False(t, p0.Equal(p1))
	assert.True(t, p0.Equal(p2))

	// A point that differs in the last ULP is a different point.
	p3 := sphere.NewPoint(20.99+1e-13, 10.12)
	assert.False(t, p0.Equal(p3))
}

func TestPoint_String(t *testing.T) {
	assert.Equal(t, "Point(12.11, 45)", sphere.NewPoint(12.11, 45).String())
}

func TestConnection_Equal(t *testing.T) {
	a := sphere.NewPoint(1, 16)
	b := sphere.NewPoint(-12, -122.1)

	c0 := sphere.NewConnection(a, b)
	c1 := sphere.NewConnection(a, b)
	c2 := sphere.NewConnection(b, a)

	assert.True(t, c0.Equal(c1))
	assert.False(t, c0.Equal(c2), "Equal compares the ordered endpoint pair")
}

// TestConnection_Cost_ReferenceDistances pins the haversine implementation to
// known Earth great-circle distances, truncated to whole kilometers.
func TestConnection_Cost_ReferenceDistances(t *testing.T) {
	radius := sphere.Earth.RadiusKm()

	cases := []struct {
		name   string
		start  sphere.Point
		finish sphere.Point
		wantKm int
	}{
		{"Baghdad→Osaka", sphere.NewPoint(33.3386, 44.3939), sphere.NewPoint(34.6937, 135.502), 8069},
		{"Warsaw-area→Auckland-area", sphere.NewPoint(-36.8667, 174.767), sphere.NewPoint(52.25, 21.0), 17349},
		{"Bangkok→Moscow", sphere.NewPoint(13.75, 100.517), sphere.NewPoint(55.7522, 37.6156), 7065},
		{"Bergen-area→Gdansk", sphere.NewPoint(54.4167, 13.4333), sphere.NewPoint(54.35, 18.6667), 338},
		{"NewYork-area→Oslo", sphere.NewPoint(43.000350, -75.499900), sphere.NewPoint(59.91273, 10.74609), 5794},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := sphere.NewConnection(tc.start, tc.finish)
			assert.Equal(t, tc.wantKm, int(c.Cost(radius)))
		})
	}
}

func TestConnection_Cost_ShortConnection(t *testing.T) {
	// Two points a few hundred meters apart in Gdansk: 284 m on Earth.
	c := sphere.NewConnection(
		sphere.NewPoint(54.424579, 18.595444),
		sphere.NewPoint(54.426383, 18.592333),
	)
	assert.Equal(t, 284, int(c.Cost(sphere.Earth.RadiusKm())*1000))
}

func TestCost_ZeroSelfDistance(t *testing.T) {
	p := sphere.NewPoint(-36.8667, 174.767)
	assert.Zero(t, sphere.Cost(p, p, sphere.Earth.RadiusKm()))
}

func TestBody_RadiusKm(t *testing.T) {
	want := map[sphere.Body]float64{
		sphere.Mercury: 2439.7,
		sphere.Venus:   6051.8,
		sphere.Earth:   6371,
		sphere.Mars:    3389.5,
		sphere.Jupiter: 69911,
		sphere.Saturn:  58232,
		sphere.Uranus:  25362,
		sphere.Neptune: 24622,
	}
	for body, radius := range want {
		assert.Equal(t, radius, body.RadiusKm(), body.String())
	}
	assert.Len(t, sphere.Bodies(), len(want))
}

func TestParseBody(t *testing.T) {
	b, err := sphere.ParseBody("earth")
	require.NoError(t, err)
	assert.Equal(t, sphere.Earth, b)

	b, err = sphere.ParseBody("Neptune")
	require.NoError(t, err)
	assert.Equal(t, sphere.Neptune, b)

	_, err = sphere.ParseBody("Pluto")
	require.ErrorIs(t, err, sphere.ErrUnknownBody)
}
