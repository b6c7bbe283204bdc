package pricing

// Category identifies one bookable service line.
type Category string

const (
	CategoryCarpentry   Category = "carpentry"
	CategoryPainting    Category = "painting"
	CategoryHandyman    Category = "handyman"
	CategoryPlumbing    Category = "plumbing"
	CategoryElectrician Category = "electrician"
)

// Quality is the painting finish tier.
type Quality string

const (
	QualityFreshCoat     Quality = "fresh_coat"
	QualityHighStandard  Quality = "high_standard"
	QualityMasterGallery Quality = "master_gallery"
)

// PropertyType scales painting work.
type PropertyType string

const (
	PropertyFlat  PropertyType = "flat"
	PropertyHouse PropertyType = "house"
)

// Trade job keys shared by handyman, plumbing and electrician tables.
const (
	ServiceHourly  = "hourly"
	ServiceHalfDay = "half_day"
	ServiceFullDay = "full_day"
)

const Currency = "gbp"

// RateItem is one priced line. UnitPrice is in pence.
type RateItem struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Unit      string `json:"unit"`
	UnitPrice int64  `json:"unit_price_pence"`
}

// RateTable is the ordered price list for a category.
type RateTable struct {
	Category  Category   `json:"category"`
	BasePrice int64      `json:"base_price_pence"`
	Items     []RateItem `json:"items"`
}

func (t RateTable) item(key string) (RateItem, bool) {
	for _, it := range t.Items {
		if it.Key == key {
			return it, true
		}
	}
	return RateItem{}, false
}

// Multiplier is a named factor applied to a painting subtotal.
type Multiplier struct {
	Key    string  `json:"key"`
	Label  string  `json:"label"`
	Factor float64 `json:"factor"`
}

// RateBook groups every table used by the calculator.
// It is built once and never mutated afterwards.
type RateBook struct {
	tables   map[Category]RateTable
	order    []Category
	quality  []Multiplier
	property []Multiplier
}

// DefaultRateBook returns the canonical site prices.
//
// Painting uses the consumer booking flow multipliers (high standard 1.3, house 1.2).
// The older painting page used 1.35 and 1.15; those are not carried.
func DefaultRateBook() *RateBook {
	return NewRateBook(
		[]RateTable{
			{
				Category: CategoryCarpentry,
				Items: []RateItem{
					{Key: "internal_door", Label: "Internal door fitting", Unit: "door", UnitPrice: 17500},
					{Key: "external_door", Label: "External door fitting", Unit: "door", UnitPrice: 28000},
					{Key: "fire_door", Label: "Fire door fitting", Unit: "door", UnitPrice: 19900},
					{Key: "door_frame", Label: "Door frame", Unit: "frame", UnitPrice: 8000},
					{Key: "flooring_m2", Label: "Flooring", Unit: "m²", UnitPrice: 3000},
					{Key: "skirting_m", Label: "Skirting board", Unit: "m", UnitPrice: 2200},
					{Key: "carpet_removal_m2", Label: "Carpet removal", Unit: "m²", UnitPrice: 700},
				},
			},
			{
				Category:  CategoryPainting,
				BasePrice: 20000,
				Items: []RateItem{
					{Key: "bedrooms", Label: "Bedroom", Unit: "room", UnitPrice: 25000},
					{Key: "living_rooms", Label: "Living room", Unit: "room", UnitPrice: 17500},
					{Key: "ceilings", Label: "Ceiling", Unit: "ceiling", UnitPrice: 6500},
					{Key: "doors_windows", Label: "Door or window", Unit: "item", UnitPrice: 5500},
				},
			},
			{
				Category: CategoryHandyman,
				Items: []RateItem{
					{Key: ServiceHourly, Label: "Hourly rate", Unit: "hour", UnitPrice: 6000},
					{Key: ServiceHalfDay, Label: "Half day (4 hours)", Unit: "job", UnitPrice: 21000},
					{Key: ServiceFullDay, Label: "Full day (8 hours)", Unit: "job", UnitPrice: 40000},
					{Key: "tv_mounting", Label: "TV mounting", Unit: "job", UnitPrice: 6900},
					{Key: "general_handyman", Label: "Handyman", Unit: "job", UnitPrice: 4500},
					{Key: "flatpack", Label: "Flatpack assembly", Unit: "job", UnitPrice: 5500},
					{Key: "light_fitting", Label: "Light fitting", Unit: "job", UnitPrice: 6500},
					{Key: "picture_hanging", Label: "Picture hanging", Unit: "job", UnitPrice: 3500},
					{Key: "minor_repairs", Label: "Minor repairs", Unit: "job", UnitPrice: 5000},
				},
			},
			{
				Category: CategoryPlumbing,
				Items: []RateItem{
					{Key: ServiceHourly, Label: "Hourly rate", Unit: "hour", UnitPrice: 7000},
					{Key: ServiceHalfDay, Label: "Half day (4 hours)", Unit: "job", UnitPrice: 25000},
					{Key: ServiceFullDay, Label: "Full day (8 hours)", Unit: "job", UnitPrice: 47000},
					{Key: "tap_replacement", Label: "Tap replacement", Unit: "job", UnitPrice: 8500},
					{Key: "toilet_repair", Label: "Toilet repair", Unit: "job", UnitPrice: 9000},
					{Key: "leak_investigation", Label: "Leak investigation", Unit: "job", UnitPrice: 9500},
				},
			},
			{
				Category: CategoryElectrician,
				Items: []RateItem{
					{Key: ServiceHourly, Label: "Hourly rate", Unit: "hour", UnitPrice: 7500},
					{Key: ServiceHalfDay, Label: "Half day (4 hours)", Unit: "job", UnitPrice: 27000},
					{Key: ServiceFullDay, Label: "Full day (8 hours)", Unit: "job", UnitPrice: 50000},
					{Key: "socket_installation", Label: "Socket installation", Unit: "job", UnitPrice: 7500},
					{Key: "light_fitting", Label: "Light fitting", Unit: "job", UnitPrice: 6500},
					{Key: "fuse_box_inspection", Label: "Fuse box inspection", Unit: "job", UnitPrice: 12000},
				},
			},
		},
		[]Multiplier{
			{Key: string(QualityFreshCoat), Label: "Fresh coat", Factor: 1.0},
			{Key: string(QualityHighStandard), Label: "High standard", Factor: 1.3},
			{Key: string(QualityMasterGallery), Label: "Master gallery", Factor: 1.8},
		},
		[]Multiplier{
			{Key: string(PropertyFlat), Label: "Flat", Factor: 1.0},
			{Key: string(PropertyHouse), Label: "House", Factor: 1.2},
		},
	)
}

// NewRateBook copies the given tables. The first multiplier of each list is the default tier.
func NewRateBook(tables []RateTable, quality, property []Multiplier) *RateBook {
	b := &RateBook{
		tables:   make(map[Category]RateTable, len(tables)),
		quality:  append([]Multiplier(nil), quality...),
		property: append([]Multiplier(nil), property...),
	}
	for _, t := range tables {
		t.Items = append([]RateItem(nil), t.Items...)
		b.tables[t.Category] = t
		b.order = append(b.order, t.Category)
	}
	return b
}

// Table returns a copy of the table for category.
func (b *RateBook) Table(category Category) (RateTable, bool) {
	t, ok := b.tables[category]
	if !ok {
		return RateTable{}, false
	}
	t.Items = append([]RateItem(nil), t.Items...)
	return t, true
}

// Tables returns every table in declaration order.
func (b *RateBook) Tables() []RateTable {
	out := make([]RateTable, 0, len(b.order))
	for _, c := range b.order {
		t, _ := b.Table(c)
		out = append(out, t)
	}
	return out
}

func (b *RateBook) QualityMultipliers() []Multiplier {
	return append([]Multiplier(nil), b.quality...)
}

func (b *RateBook) PropertyMultipliers() []Multiplier {
	return append([]Multiplier(nil), b.property...)
}

func lookupMultiplier(list []Multiplier, key string) Multiplier {
	for _, m := range list {
		if m.Key == key {
			return m
		}
	}
	if len(list) == 0 {
		return Multiplier{Factor: 1.0}
	}
	return list[0]
}
