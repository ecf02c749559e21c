package timezone

// City pairs a human-readable zone name with the numeric TimeZoneCity code
// and the signed UTC offset written into image metadata.
type City struct {
	Name   string
	ID     int
	Offset string
}

// The codes follow the Canon TimeZoneCity tag values; the catalog is not an
// exhaustive list of either.
// https://exiftool.org/TagNames/Canon.html
var cities = []City{
	{"Adelaide", 5, "+09:30"},
	{"Anchorage", 31, "-09:00"},
	{"Austin", 28, "-06:00"},
	{"Azores", 21, "-01:00"},
	{"Bangkok", 8, "+07:00"},
	{"Buenos Aires", 25, "-04:00"},
	{"Cairo", 18, "+02:00"},
	{"Caracas", 26, "-04:30"},
	{"Chatham Islands", 1, "+12:45"},
	{"Chicago", 28, "-06:00"},
	{"Delhi", 12, "+05:30"},
	{"Denver", 29, "-07:00"},
	{"Dhaka", 10, "+06:00"},
	{"Dubai", 15, "+04:00"},
	{"Dublin", 20, "+00:00"},
	{"Fernando de Noronha", 22, "-02:00"},
	{"Galapagos", 28, "-06:00"},
	{"Hong Kong", 7, "+08:00"},
	{"Honolulu", 32, "-10:00"},
	{"Kabul", 14, "+04:30"},
	{"Karachi", 13, "+05:00"},
	{"Kathmandu", 11, "+05:45"},
	{"Kiev", 17, "+02:00"},
	{"London", 20, "+00:00"},
	{"Los Angeles", 30, "-08:00"},
	{"Mexico City", 28, "-06:00"},
	{"Moscow", 17, "+04:00"},
	{"New York", 27, "-05:00"},
	{"Newfoundland", 24, "-03:30"},
	{"Paris", 19, "+01:00"},
	{"Quintana Roo", 27, "-05:00"},
	{"Quito", 27, "-05:00"},
	{"Rome", 19, "+01:00"},
	{"Samoa", 33, "+13:00"},
	{"San Francisco", 30, "-08:00"},
	{"Santiago", 25, "-04:00"},
	{"Sao Paulo", 23, "-03:00"},
	{"Singapore", 7, "+08:00"},
	{"Solomon Islands", 3, "+11:00"},
	{"Sydney", 4, "+10:00"},
	{"Tehran", 16, "+03:30"},
	{"Tokyo", 6, "+09:00"},
	{"US/Central", 28, "-06:00"},
	{"US/Eastern", 27, "-05:00"},
	{"US/Pacific", 30, "-08:00"},
	{"Wellington", 2, "+12:00"},
	{"Yangon", 9, "+06:30"},
}

var byName map[string]City

func init() {
	byName = make(map[string]City, len(cities))
	for _, c := range cities {
		byName[c.Name] = c
	}
}

// Lookup returns the catalog entry for a city name. Names are matched
// exactly; the catalog is the source of truth for valid values.
func Lookup(name string) (City, bool) {
	c, ok := byName[name]
	return c, ok
}

// Names returns every catalog city name in table order (alphabetical).
func Names() []string {
	names := make([]string, len(cities))
	for i, c := range cities {
		names[i] = c.Name
	}
	return names
}

// All returns a copy of the catalog in table order.
func All() []City {
	out := make([]City, len(cities))
	copy(out, cities)
	return out
}
