// Package wordlist holds the static candidate-password tables shared by the
// simulators. Everything here is read-only after init and safe for
// concurrent readers.
package wordlist

// TopCommon is an ordered list of frequently seen WiFi passwords.
// Duplicates across tables are expected; callers dedup at use time.
var TopCommon = []string{
	"password", "123456", "12345678", "123456789", "1234567890",
	"qwerty", "qwerty123", "abc123", "password1", "password123",
	"admin", "admin123", "letmein", "welcome", "welcome1",
	"iloveyou", "sunshine", "princess", "dragon", "monkey",
	"football", "baseball", "basketball", "soccer", "hockey",
	"superman", "batman", "spiderman", "pokemon", "starwars",
	"master", "shadow", "michael", "jennifer", "jordan",
	"hunter", "ranger", "buster", "killer", "soldier",
	"charlie", "thomas", "george", "daniel", "andrew",
	"joshua", "matthew", "ashley", "jessica", "amanda",
	"internet", "wireless", "wifi1234", "wifipassword", "mywifi",
	"homewifi", "freewifi", "guestwifi", "default", "changeme",
	"trustno1", "whatever", "passw0rd", "p@ssword", "p@ssw0rd",
	"secret", "secret123", "love123", "happy123", "summer",
	"winter", "spring", "autumn", "january", "december",
	"monday", "friday", "sunday", "coffee", "cookie",
	"chocolate", "banana", "orange", "purple", "yellow",
	"silver", "golden", "diamond", "crystal", "rainbow",
	"flower", "butterfly", "angel", "devil", "heaven",
	"freedom", "forever", "family", "friends", "mother",
	"father", "sister", "brother", "junior", "senior",
	"computer", "laptop", "samsung", "nokia", "iphone",
	"google", "facebook", "twitter", "youtube", "netflix",
	"11111111", "00000000", "12341234", "87654321", "11223344",
	"696969", "666666", "777777", "88888888", "99999999",
}

// RouterDefaults maps lowercase vendor names to factory-default credentials.
var RouterDefaults = map[string][]string{
	"netgear":  {"password", "admin", "1234567890", "netgear1", "netgear123"},
	"linksys":  {"admin", "password", "linksys", "linksys123", "admin123"},
	"tp-link":  {"admin", "password", "tplink123", "12345678", "tplink"},
	"d-link":   {"admin", "password", "dlink", "dlink123", "year2000"},
	"asus":     {"admin", "password", "asus", "asus123", "admin123"},
	"belkin":   {"admin", "password", "belkin", "belkin123", "12345678"},
	"cisco":    {"cisco", "admin", "password", "cisco123", "ciscoadmin"},
	"huawei":   {"admin", "password", "huawei", "huawei123", "admin@huawei"},
	"zyxel":    {"1234", "admin", "password", "zyxel", "zyxel123"},
	"motorola": {"motorola", "admin", "password", "moto123", "12345678"},
	"arris":    {"password", "admin", "arris", "arris123", "web_admin"},
	"ubiquiti": {"ubnt", "admin", "password", "ubiquiti", "ubnt1234"},
}

// SSIDPatterns are templates expanded with the lowercased SSID.
var SSIDPatterns = []string{
	"{ssid}",
	"{ssid}123",
	"{ssid}1234",
	"{ssid}12345",
	"{ssid}2023",
	"{ssid}2024",
	"{ssid}!",
	"{ssid}@123",
	"{ssid}_wifi",
	"{ssid}-wifi",
	"{ssid}wifi",
	"{ssid}password",
	"{ssid}pass",
	"{ssid}admin",
	"wifi{ssid}",
	"my{ssid}",
}

// LocationWords are place-flavored fillers that show up in home passwords.
var LocationWords = []string{
	"home", "house", "office", "casa", "myplace",
	"upstairs", "downstairs", "garage", "basement", "kitchen",
	"newyork", "london", "paris", "tokyo", "sydney",
}

// DateWords are date-shaped strings commonly appended to passwords.
var DateWords = []string{
	"2020", "2021", "2022", "2023", "2024", "2025",
	"1234", "0000", "1111", "2000", "1990", "1980",
	"0101", "1212", "31121999", "01012000",
}

// BrandWords are consumer brand names that leak into passwords.
var BrandWords = []string{
	"samsung", "apple", "google", "microsoft", "amazon",
	"netflix", "spotify", "nike", "adidas", "toyota",
	"honda", "ferrari", "pepsi", "cocacola", "starbucks",
}

// VeryCommon is the short list that drives the simulated
// common-password hit.
var VeryCommon = []string{
	"password", "12345678", "password123", "admin", "123456789",
	"qwerty123", "welcome", "letmein", "password1", "123123123",
	"admin123", "root", "toor", "pass", "test",
}

// DefaultsFor returns the factory defaults for a vendor, or nil when the
// vendor is unknown. Lookup is case-insensitive via the caller lowering.
func DefaultsFor(vendor string) []string {
	return RouterDefaults[vendor]
}

// Vendors returns the known vendor names in no particular order.
func Vendors() []string {
	names := make([]string, 0, len(RouterDefaults))
	for v := range RouterDefaults {
		names = append(names, v)
	}
	return names
}
