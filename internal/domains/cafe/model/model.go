package model

const (
	TableName  = "cafes"
	EntityName = "cafe"

	FieldID           = "id"
	FieldName         = "name"
	FieldMapURL       = "map_url"
	FieldImgURL       = "img_url"
	FieldLocation     = "location"
	FieldSeats        = "seats"
	FieldHasToilet    = "has_toilet"
	FieldHasWifi      = "has_wifi"
	FieldHasSockets   = "has_sockets"
	FieldCanTakeCalls = "can_take_calls"
	FieldCoffeePrice  = "coffee_price"
)

const (
	MessageNoCafes          = "Sorry, there are no cafes in the database."
	MessageNoCafeAtLocation = "Sorry, we don't have a cafe at that location."
	MessageCafeNotFound     = "Sorry a cafe with that id was not found in the database."
	MessageDuplicateName    = "Sorry, a cafe with that name already exists."
)

// Cafe is a row of the cafes table. ID is assigned by the store on insert.
type Cafe struct {
	ID           int64   `db:"id"             generated:"true"`
	Name         string  `db:"name"`
	MapURL       string  `db:"map_url"`
	ImgURL       string  `db:"img_url"`
	Location     string  `db:"location"`
	Seats        string  `db:"seats"`
	HasToilet    bool    `db:"has_toilet"`
	HasWifi      bool    `db:"has_wifi"`
	HasSockets   bool    `db:"has_sockets"`
	CanTakeCalls bool    `db:"can_take_calls"`
	CoffeePrice  *string `db:"coffee_price"`
}
