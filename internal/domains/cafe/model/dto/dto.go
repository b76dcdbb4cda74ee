package dto

import (
	"cafe/internal/domains/cafe/model"
	"cafe/shared"
	"cafe/shared/constant"
	"net/url"
	"strings"
)

type CreateCafeRequest struct {
	Name         string  `form:"name"         validate:"required,max=250"`
	MapURL       string  `form:"map_url"      validate:"required,max=500"`
	ImgURL       string  `form:"img_url"      validate:"required,max=500"`
	Location     string  `form:"loc"          validate:"required,max=250"`
	Seats        string  `form:"seats"        validate:"required,max=250"`
	HasToilet    bool    `form:"toilet"`
	HasWifi      bool    `form:"wifi"`
	HasSockets   bool    `form:"sockets"`
	CanTakeCalls bool    `form:"calls"`
	CoffeePrice  *string `form:"coffee_price" validate:"omitempty,max=250"`
}

// FromForm reads the submitted form. Amenity flags go through shared.ParseTruthy and a
// blank coffee_price is stored as NULL.
func (c *CreateCafeRequest) FromForm(form url.Values) {
	c.Name = strings.TrimSpace(form.Get(constant.FormFieldName))
	c.MapURL = strings.TrimSpace(form.Get(constant.FormFieldMapURL))
	c.ImgURL = strings.TrimSpace(form.Get(constant.FormFieldImgURL))
	c.Location = strings.TrimSpace(form.Get(constant.FormFieldLocation))
	c.Seats = strings.TrimSpace(form.Get(constant.FormFieldSeats))
	c.HasToilet = shared.ParseTruthy(form.Get(constant.FormFieldToilet))
	c.HasWifi = shared.ParseTruthy(form.Get(constant.FormFieldWifi))
	c.HasSockets = shared.ParseTruthy(form.Get(constant.FormFieldSockets))
	c.CanTakeCalls = shared.ParseTruthy(form.Get(constant.FormFieldCalls))
	c.CoffeePrice = nil

	if price := strings.TrimSpace(form.Get(constant.FormFieldCoffeePrice)); price != "" {
		c.CoffeePrice = &price
	}
}

func (c *CreateCafeRequest) ToModel() model.Cafe {
	return model.Cafe{
		Name:         c.Name,
		MapURL:       c.MapURL,
		ImgURL:       c.ImgURL,
		Location:     c.Location,
		Seats:        c.Seats,
		HasToilet:    c.HasToilet,
		HasWifi:      c.HasWifi,
		HasSockets:   c.HasSockets,
		CanTakeCalls: c.CanTakeCalls,
		CoffeePrice:  c.CoffeePrice,
	}
}

type UpdatePriceRequest struct {
	ID          int64  `db:"-"`
	CoffeePrice string `db:"coffee_price" form:"new_price" validate:"required,max=250"`
}

type CloseCafeRequest struct {
	ID     int64
	APIKey string
}

type CafeResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	MapURL       string  `json:"map_url"`
	ImgURL       string  `json:"img_url"`
	Location     string  `json:"location"`
	Seats        string  `json:"seats"`
	HasToilet    bool    `json:"has_toilet"`
	HasWifi      bool    `json:"has_wifi"`
	HasSockets   bool    `json:"has_sockets"`
	CanTakeCalls bool    `json:"can_take_calls"`
	CoffeePrice  *string `json:"coffee_price"`
}

func (r *CafeResponse) FromModel(model model.Cafe) {
	r.ID = model.ID
	r.Name = model.Name
	r.MapURL = model.MapURL
	r.ImgURL = model.ImgURL
	r.Location = model.Location
	r.Seats = model.Seats
	r.HasToilet = model.HasToilet
	r.HasWifi = model.HasWifi
	r.HasSockets = model.HasSockets
	r.CanTakeCalls = model.CanTakeCalls
	r.CoffeePrice = model.CoffeePrice
}

// CafesResponse keys cafes by their 1-based position in the listing.
type CafesResponse map[string]CafeResponse

func NewCafesResponse(models []model.Cafe) CafesResponse {
	responses := make([]CafeResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return shared.IndexByPosition(responses)
}
