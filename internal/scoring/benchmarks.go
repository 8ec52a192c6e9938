package scoring

import (
	"strings"

	"github.com/gdugdh24/rentscore-backend/internal/domain"
)

// Tier is a coarse city-size class driving baseline price expectations
type Tier string

const (
	TierMetro Tier = "metro"
	Tier1     Tier = "tier1"
	Tier2     Tier = "tier2"
	Tier3     Tier = "tier3"
)

const defaultCity = "default"

// RentBenchmark is the monthly rent band for a city
type RentBenchmark struct {
	Min  float64 `json:"min"`
	Avg  float64 `json:"avg"`
	Max  float64 `json:"max"`
	Tier Tier    `json:"tier"`
}

var rentBenchmarks = map[string]RentBenchmark{
	"mumbai":     {Min: 15000, Avg: 35000, Max: 80000, Tier: TierMetro},
	"delhi":      {Min: 12000, Avg: 28000, Max: 65000, Tier: TierMetro},
	"bangalore":  {Min: 10000, Avg: 25000, Max: 55000, Tier: TierMetro},
	"bengaluru":  {Min: 10000, Avg: 25000, Max: 55000, Tier: TierMetro},
	"hyderabad":  {Min: 9000, Avg: 22000, Max: 50000, Tier: TierMetro},
	"chennai":    {Min: 8000, Avg: 20000, Max: 45000, Tier: TierMetro},
	"kolkata":    {Min: 7000, Avg: 16000, Max: 38000, Tier: TierMetro},
	"pune":       {Min: 8000, Avg: 20000, Max: 45000, Tier: Tier1},
	"ahmedabad":  {Min: 6000, Avg: 15000, Max: 35000, Tier: Tier1},
	"chandigarh": {Min: 6000, Avg: 15000, Max: 32000, Tier: Tier1},
	"jaipur":     {Min: 5000, Avg: 12000, Max: 28000, Tier: Tier1},
	"lucknow":    {Min: 4500, Avg: 11000, Max: 25000, Tier: Tier1},
	"kochi":      {Min: 5000, Avg: 12000, Max: 26000, Tier: Tier2},
	"coimbatore": {Min: 4500, Avg: 11000, Max: 24000, Tier: Tier2},
	"surat":      {Min: 4500, Avg: 11000, Max: 24000, Tier: Tier2},
	"indore":     {Min: 4000, Avg: 10000, Max: 22000, Tier: Tier2},
	"nagpur":     {Min: 4000, Avg: 10000, Max: 22000, Tier: Tier2},
	"bhopal":     {Min: 3500, Avg: 9000, Max: 20000, Tier: Tier2},
	"patna":      {Min: 3500, Avg: 8500, Max: 18000, Tier: Tier3},
	"ranchi":     {Min: 3000, Avg: 8000, Max: 17000, Tier: Tier3},
	defaultCity:  {Min: 3000, Avg: 8000, Max: 20000, Tier: Tier3},
}

// premiumAreas lists prestige neighbourhoods per city, matched as substrings
var premiumAreas = map[string][]string{
	"mumbai":    {"bandra", "juhu", "worli", "powai", "lower parel", "andheri west", "colaba"},
	"delhi":     {"south delhi", "vasant kunj", "greater kailash", "defence colony", "hauz khas", "dwarka"},
	"bangalore": {"koramangala", "indiranagar", "whitefield", "hsr layout", "jayanagar"},
	"bengaluru": {"koramangala", "indiranagar", "whitefield", "hsr layout", "jayanagar"},
	"hyderabad": {"banjara hills", "jubilee hills", "gachibowli", "hitech city"},
	"chennai":   {"adyar", "anna nagar", "besant nagar", "nungambakkam"},
	"kolkata":   {"salt lake", "park street", "ballygunge", "new town"},
	"pune":      {"koregaon park", "kalyani nagar", "baner", "aundh", "viman nagar"},
}

var majorCities = map[string]struct{}{
	"mumbai":    {},
	"delhi":     {},
	"bangalore": {},
	"bengaluru": {},
	"hyderabad": {},
	"chennai":   {},
	"kolkata":   {},
	"pune":      {},
	"ahmedabad": {},
}

// averagePriceByType is the typical monthly price per listing type
var averagePriceByType = map[string]map[domain.PropertyType]float64{
	"mumbai": {
		domain.PropertyTypeRoom: 14000, domain.PropertyTypePG: 16000, domain.PropertyTypeHostel: 12000,
		domain.PropertyTypeFlat: 35000, domain.PropertyTypeHome: 55000,
	},
	"delhi": {
		domain.PropertyTypeRoom: 11000, domain.PropertyTypePG: 13000, domain.PropertyTypeHostel: 10000,
		domain.PropertyTypeFlat: 28000, domain.PropertyTypeHome: 42000,
	},
	"bangalore": {
		domain.PropertyTypeRoom: 10000, domain.PropertyTypePG: 12000, domain.PropertyTypeHostel: 9000,
		domain.PropertyTypeFlat: 25000, domain.PropertyTypeHome: 38000,
	},
	"hyderabad": {
		domain.PropertyTypeRoom: 9000, domain.PropertyTypePG: 10000, domain.PropertyTypeHostel: 8000,
		domain.PropertyTypeFlat: 22000, domain.PropertyTypeHome: 33000,
	},
	"pune": {
		domain.PropertyTypeRoom: 8000, domain.PropertyTypePG: 9500, domain.PropertyTypeHostel: 7500,
		domain.PropertyTypeFlat: 20000, domain.PropertyTypeHome: 30000,
	},
	defaultCity: {
		domain.PropertyTypeRoom: 3500, domain.PropertyTypePG: 4500, domain.PropertyTypeHostel: 4000,
		domain.PropertyTypeFlat: 8000, domain.PropertyTypeHome: 12000,
	},
}

// keywordPoints is one row of an ordered substring table. Order matters:
// a tag stops at its first match, and short keywords such as "ac" sit
// after longer ones that contain them.
type keywordPoints struct {
	keyword string
	points  int
}

var amenityPoints = []keywordPoints{
	{"wifi", 3},
	{"security", 3},
	{"furnished", 3},
	{"swimming pool", 3},
	{"power backup", 2},
	{"parking", 2},
	{"cctv", 2},
	{"lift", 2},
	{"gym", 2},
	{"water supply", 2},
	{"kitchen", 2},
	{"clubhouse", 2},
	{"meals", 2},
	{"ac", 2},
	{"laundry", 1},
	{"balcony", 1},
	{"garden", 1},
	{"housekeeping", 1},
}

var amenityPointsSimple = []keywordPoints{
	{"wifi", 15},
	{"security", 15},
	{"furnished", 12},
	{"swimming pool", 10},
	{"power backup", 10},
	{"parking", 10},
	{"gym", 10},
	{"cctv", 8},
	{"lift", 8},
	{"water", 8},
	{"clubhouse", 8},
	{"ac", 10},
	{"garden", 5},
	{"laundry", 5},
}

// profileTypeCompatibility is the percentage fit of a listing type per persona
var profileTypeCompatibility = map[domain.Persona]map[domain.PropertyType]float64{
	domain.PersonaStudent: {
		domain.PropertyTypeRoom: 90, domain.PropertyTypePG: 100, domain.PropertyTypeHostel: 95,
		domain.PropertyTypeFlat: 60, domain.PropertyTypeHome: 40,
	},
	domain.PersonaWorker: {
		domain.PropertyTypeRoom: 80, domain.PropertyTypePG: 85, domain.PropertyTypeHostel: 60,
		domain.PropertyTypeFlat: 90, domain.PropertyTypeHome: 70,
	},
	domain.PersonaFamily: {
		domain.PropertyTypeRoom: 30, domain.PropertyTypePG: 20, domain.PropertyTypeHostel: 10,
		domain.PropertyTypeFlat: 90, domain.PropertyTypeHome: 100,
	},
	domain.PersonaCouple: {
		domain.PropertyTypeRoom: 60, domain.PropertyTypePG: 40, domain.PropertyTypeHostel: 20,
		domain.PropertyTypeFlat: 100, domain.PropertyTypeHome: 85,
	},
}

var profileAmenities = map[domain.Persona][]string{
	domain.PersonaStudent: {"wifi", "laundry", "meals", "study", "library", "security"},
	domain.PersonaWorker:  {"wifi", "parking", "power backup", "gym", "ac", "housekeeping"},
	domain.PersonaFamily:  {"parking", "security", "garden", "play area", "school", "lift", "power backup"},
	domain.PersonaCouple:  {"ac", "kitchen", "balcony", "gym", "parking", "furnished"},
}

var similarTypes = map[domain.PropertyType][]domain.PropertyType{
	domain.PropertyTypeRoom:   {domain.PropertyTypePG, domain.PropertyTypeHostel},
	domain.PropertyTypePG:     {domain.PropertyTypeRoom, domain.PropertyTypeHostel},
	domain.PropertyTypeHostel: {domain.PropertyTypePG, domain.PropertyTypeRoom},
	domain.PropertyTypeFlat:   {domain.PropertyTypeHome},
	domain.PropertyTypeHome:   {domain.PropertyTypeFlat},
}

var typeMultipliers = map[domain.PropertyType]float64{
	domain.PropertyTypeRoom:   0.4,
	domain.PropertyTypePG:     0.5,
	domain.PropertyTypeHostel: 0.45,
	domain.PropertyTypeFlat:   1.0,
	domain.PropertyTypeHome:   1.5,
}

// GeoPoint is a latitude/longitude pair in degrees
type GeoPoint struct {
	Lat float64
	Lon float64
}

// locationCentroids holds approximate centres of named localities
var locationCentroids = map[string]GeoPoint{
	"mumbai":          {19.0760, 72.8777},
	"andheri":         {19.1136, 72.8697},
	"bandra":          {19.0596, 72.8295},
	"powai":           {19.1176, 72.9060},
	"juhu":            {19.1075, 72.8263},
	"worli":           {19.0176, 72.8172},
	"delhi":           {28.6139, 77.2090},
	"connaught place": {28.6315, 77.2167},
	"dwarka":          {28.5921, 77.0460},
	"hauz khas":       {28.5494, 77.2001},
	"bangalore":       {12.9716, 77.5946},
	"bengaluru":       {12.9716, 77.5946},
	"koramangala":     {12.9352, 77.6245},
	"indiranagar":     {12.9784, 77.6408},
	"whitefield":      {12.9698, 77.7500},
	"hyderabad":       {17.3850, 78.4867},
	"gachibowli":      {17.4401, 78.3489},
	"hitech city":     {17.4435, 78.3772},
	"pune":            {18.5204, 73.8567},
	"hinjewadi":       {18.5913, 73.7389},
	"koregaon park":   {18.5362, 73.8940},
	"chennai":         {13.0827, 80.2707},
	"adyar":           {13.0012, 80.2565},
	"kolkata":         {22.5726, 88.3639},
	"salt lake":       {22.5867, 88.4171},
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Benchmark returns the rent band for a city, falling back to the default band
func Benchmark(city string) RentBenchmark {
	if b, ok := rentBenchmarks[normalize(city)]; ok {
		return b
	}
	return rentBenchmarks[defaultCity]
}

// MarketAverage returns the typical monthly price for a listing type in a
// city. Unknown cities use the default row and unknown types use FLAT.
func MarketAverage(city string, t domain.PropertyType) float64 {
	row, ok := averagePriceByType[normalize(city)]
	if !ok {
		row = averagePriceByType[defaultCity]
	}
	if avg, ok := row[domain.ParsePropertyType(string(t))]; ok {
		return avg
	}
	return row[domain.PropertyTypeFlat]
}

// Centroid looks up a named locality. An exact key wins, otherwise the
// longest known name contained in the input is used.
func Centroid(name string) (GeoPoint, bool) {
	key := normalize(name)
	if key == "" {
		return GeoPoint{}, false
	}
	if p, ok := locationCentroids[key]; ok {
		return p, true
	}

	best := ""
	for k := range locationCentroids {
		if !strings.Contains(key, k) {
			continue
		}
		if len(k) > len(best) || (len(k) == len(best) && k < best) {
			best = k
		}
	}
	if best == "" {
		return GeoPoint{}, false
	}
	return locationCentroids[best], true
}
