package bhava

// Traditional house groupings. The 1st house is both a kendra and a trikona;
// houses 6 and 10 appear in more than one grouping, so these are tags, not a
// partition.
var (
	kendraHouses   = map[int]bool{1: true, 4: true, 7: true, 10: true}
	trikonaHouses  = map[int]bool{1: true, 5: true, 9: true}
	upachayaHouses = map[int]bool{3: true, 6: true, 10: true, 11: true}
	dusthanaHouses = map[int]bool{6: true, 8: true, 12: true}
	marakaHouses   = map[int]bool{2: true, 7: true}
)

// IsKendra reports whether house n is angular.
func IsKendra(n int) bool { return kendraHouses[n] }

// IsTrikona reports whether house n is trinal.
func IsTrikona(n int) bool { return trikonaHouses[n] }

// IsUpachaya reports whether house n is a growth house.
func IsUpachaya(n int) bool { return upachayaHouses[n] }

// IsDusthana reports whether house n is a malefic house.
func IsDusthana(n int) bool { return dusthanaHouses[n] }

// IsMaraka reports whether house n is a maraka house.
func IsMaraka(n int) bool { return marakaHouses[n] }

// houseInfo holds the immutable signification record for one house.
type houseInfo struct {
	name     string
	sanskrit string
	tags     []string
}

var houseSignifications = [HouseCount + 1]houseInfo{
	1:  {"Self", "Tanu Bhava", []string{"Personality", "Body", "Health", "Appearance"}},
	2:  {"Wealth", "Dhana Bhava", []string{"Money", "Family", "Speech", "Values"}},
	3:  {"Courage", "Sahaja Bhava", []string{"Siblings", "Effort", "Communication", "Skills"}},
	4:  {"Happiness", "Sukha Bhava", []string{"Mother", "Home", "Property", "Comforts"}},
	5:  {"Children", "Putra Bhava", []string{"Creativity", "Intelligence", "Romance", "Merit"}},
	6:  {"Obstacles", "Ari Bhava", []string{"Enemies", "Disease", "Debts", "Service"}},
	7:  {"Partnership", "Kalatra Bhava", []string{"Spouse", "Marriage", "Trade", "Public life"}},
	8:  {"Transformation", "Ayu Bhava", []string{"Longevity", "Occult", "Inheritance", "Crisis"}},
	9:  {"Fortune", "Bhagya Bhava", []string{"Dharma", "Father", "Higher learning", "Pilgrimage"}},
	10: {"Career", "Karma Bhava", []string{"Profession", "Status", "Authority", "Deeds"}},
	11: {"Gains", "Labha Bhava", []string{"Income", "Friends", "Hopes", "Elder siblings"}},
	12: {"Loss", "Vyaya Bhava", []string{"Expenses", "Foreign lands", "Liberation", "Isolation"}},
}

// Name returns the English name of house n.
func Name(n int) string {
	if n < 1 || n > HouseCount {
		return ""
	}
	return houseSignifications[n].name
}

// SanskritName returns the traditional name of house n.
func SanskritName(n int) string {
	if n < 1 || n > HouseCount {
		return ""
	}
	return houseSignifications[n].sanskrit
}

// Significations returns the signification tags of house n.
func Significations(n int) []string {
	if n < 1 || n > HouseCount {
		return nil
	}
	return houseSignifications[n].tags
}
