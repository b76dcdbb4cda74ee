package dto_test

import (
	"net/url"
	"testing"

	"cafe/internal/domains/cafe/model"
	"cafe/internal/domains/cafe/model/dto"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCafeRequest_FromForm(t *testing.T) {
	tests := []struct {
		name     string
		form     url.Values
		expected dto.CreateCafeRequest
	}{
		{
			name: "all fields",
			form: url.Values{
				"name":         {" Blue Cup "},
				"map_url":      {"https://maps.example/blue"},
				"img_url":      {"https://img.example/blue.jpg"},
				"loc":          {"Berlin"},
				"seats":        {"20-30"},
				"sockets":      {"true"},
				"toilet":       {"1"},
				"wifi":         {"on"},
				"calls":        {"false"},
				"coffee_price": {"£2.40"},
			},
			expected: dto.CreateCafeRequest{
				Name:        "Blue Cup",
				MapURL:      "https://maps.example/blue",
				ImgURL:      "https://img.example/blue.jpg",
				Location:    "Berlin",
				Seats:       "20-30",
				HasSockets:  true,
				HasToilet:   true,
				HasWifi:     true,
				CoffeePrice: func() *string { p := "£2.40"; return &p }(),
			},
		},
		{
			name: "absent flags and blank price",
			form: url.Values{
				"name":         {"Red Cup"},
				"loc":          {"Paris"},
				"coffee_price": {"  "},
			},
			expected: dto.CreateCafeRequest{
				Name:     "Red Cup",
				Location: "Paris",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req dto.CreateCafeRequest
			req.FromForm(tt.form)

			assert.Equal(t, tt.expected, req)
		})
	}
}

func TestCreateCafeRequest_ToModel(t *testing.T) {
	price := "£2.40"
	req := dto.CreateCafeRequest{
		Name:         "Blue Cup",
		MapURL:       "https://maps.example/blue",
		ImgURL:       "https://img.example/blue.jpg",
		Location:     "Berlin",
		Seats:        "20-30",
		HasToilet:    true,
		CanTakeCalls: true,
		CoffeePrice:  &price,
	}

	cafe := req.ToModel()

	assert.Zero(t, cafe.ID, "expected ID to be left to the store")
	assert.Equal(t, req.Name, cafe.Name)
	assert.Equal(t, req.Location, cafe.Location)
	assert.Equal(t, req.Seats, cafe.Seats)
	assert.True(t, cafe.HasToilet)
	assert.True(t, cafe.CanTakeCalls)
	assert.False(t, cafe.HasWifi)
	assert.Equal(t, &price, cafe.CoffeePrice)
}

func TestCafeResponse_JSON(t *testing.T) {
	price := "£2.40"

	tests := []struct {
		name     string
		cafe     model.Cafe
		expected string
	}{
		{
			name: "with price",
			cafe: model.Cafe{
				ID: 1, Name: "Blue Cup", MapURL: "m", ImgURL: "i", Location: "Berlin", Seats: "20-30",
				HasToilet: true, HasWifi: true, HasSockets: true, CoffeePrice: &price,
			},
			expected: `{"id":1,"name":"Blue Cup","map_url":"m","img_url":"i","location":"Berlin","seats":"20-30",
				"has_toilet":true,"has_wifi":true,"has_sockets":true,"can_take_calls":false,"coffee_price":"£2.40"}`,
		},
		{
			name: "without price",
			cafe: model.Cafe{ID: 2, Name: "Red Cup", MapURL: "m", ImgURL: "i", Location: "Paris", Seats: "5"},
			expected: `{"id":2,"name":"Red Cup","map_url":"m","img_url":"i","location":"Paris","seats":"5",
				"has_toilet":false,"has_wifi":false,"has_sockets":false,"can_take_calls":false,"coffee_price":null}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var res dto.CafeResponse
			res.FromModel(tt.cafe)

			body, err := json.Marshal(res)
			require.NoError(t, err)

			assert.JSONEq(t, tt.expected, string(body))
		})
	}
}

func TestNewCafesResponse(t *testing.T) {
	res := dto.NewCafesResponse([]model.Cafe{
		{ID: 4, Name: "Blue Cup"},
		{ID: 9, Name: "Red Cup"},
	})

	require.Len(t, res, 2)
	assert.Equal(t, int64(4), res["1"].ID)
	assert.Equal(t, int64(9), res["2"].ID)

	empty := dto.NewCafesResponse(nil)

	body, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(body))
}
