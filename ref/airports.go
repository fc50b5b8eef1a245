// Generated from the OpenFlights airports dataset, trimmed to airports with
// scheduled passenger service.
//
// Generation date: 2025-11-02
package ref

var airportTable = map[string]Airport{
	"AMS": {Name: "Amsterdam Airport Schiphol", City: "Amsterdam", Country: "Netherlands"},
	"ARN": {Name: "Stockholm-Arlanda Airport", City: "Stockholm", Country: "Sweden"},
	"ATH": {Name: "Eleftherios Venizelos International Airport", City: "Athens", Country: "Greece"},
	"ATL": {Name: "Hartsfield Jackson Atlanta International Airport", City: "Atlanta", Country: "United States"},
	"AUH": {Name: "Abu Dhabi International Airport", City: "Abu Dhabi", Country: "United Arab Emirates"},
	"AUS": {Name: "Austin Bergstrom International Airport", City: "Austin", Country: "United States"},
	"BCN": {Name: "Barcelona International Airport", City: "Barcelona", Country: "Spain"},
	"BKK": {Name: "Suvarnabhumi Airport", City: "Bangkok", Country: "Thailand"},
	"BNE": {Name: "Brisbane International Airport", City: "Brisbane", Country: "Australia"},
	"BOG": {Name: "El Dorado International Airport", City: "Bogota", Country: "Colombia"},
	"BOM": {Name: "Chhatrapati Shivaji International Airport", City: "Mumbai", Country: "India"},
	"BOS": {Name: "General Edward Lawrence Logan International Airport", City: "Boston", Country: "United States"},
	"BRU": {Name: "Brussels Airport", City: "Brussels", Country: "Belgium"},
	"BUD": {Name: "Budapest Liszt Ferenc International Airport", City: "Budapest", Country: "Hungary"},
	"BWI": {Name: "Baltimore/Washington International Thurgood Marshall Airport", City: "Baltimore", Country: "United States"},
	"CAN": {Name: "Guangzhou Baiyun International Airport", City: "Guangzhou", Country: "China"},
	"CDG": {Name: "Charles de Gaulle International Airport", City: "Paris", Country: "France"},
	"CGK": {Name: "Soekarno-Hatta International Airport", City: "Jakarta", Country: "Indonesia"},
	"CLT": {Name: "Charlotte Douglas International Airport", City: "Charlotte", Country: "United States"},
	"CPH": {Name: "Copenhagen Kastrup Airport", City: "Copenhagen", Country: "Denmark"},
	"CPT": {Name: "Cape Town International Airport", City: "Cape Town", Country: "South Africa"},
	"CUN": {Name: "Cancun International Airport", City: "Cancun", Country: "Mexico"},
	"DCA": {Name: "Ronald Reagan Washington National Airport", City: "Washington", Country: "United States"},
	"DEL": {Name: "Indira Gandhi International Airport", City: "Delhi", Country: "India"},
	"DEN": {Name: "Denver International Airport", City: "Denver", Country: "United States"},
	"DFW": {Name: "Dallas Fort Worth International Airport", City: "Dallas-Fort Worth", Country: "United States"},
	"DOH": {Name: "Hamad International Airport", City: "Doha", Country: "Qatar"},
	"DTW": {Name: "Detroit Metropolitan Wayne County Airport", City: "Detroit", Country: "United States"},
	"DUB": {Name: "Dublin Airport", City: "Dublin", Country: "Ireland"},
	"DXB": {Name: "Dubai International Airport", City: "Dubai", Country: "United Arab Emirates"},
	"EWR": {Name: "Newark Liberty International Airport", City: "Newark", Country: "United States"},
	"EZE": {Name: "Ministro Pistarini International Airport", City: "Buenos Aires", Country: "Argentina"},
	"FCO": {Name: "Leonardo da Vinci-Fiumicino Airport", City: "Rome", Country: "Italy"},
	"FLL": {Name: "Fort Lauderdale Hollywood International Airport", City: "Fort Lauderdale", Country: "United States"},
	"FRA": {Name: "Frankfurt am Main Airport", City: "Frankfurt", Country: "Germany"},
	"GIG": {Name: "Rio Galeao Tom Jobim International Airport", City: "Rio de Janeiro", Country: "Brazil"},
	"GRU": {Name: "Guarulhos Governador Andre Franco Montoro International Airport", City: "Sao Paulo", Country: "Brazil"},
	"GVA": {Name: "Geneva Cointrin International Airport", City: "Geneva", Country: "Switzerland"},
	"HEL": {Name: "Helsinki Vantaa Airport", City: "Helsinki", Country: "Finland"},
	"HKG": {Name: "Hong Kong International Airport", City: "Hong Kong", Country: "Hong Kong"},
	"HND": {Name: "Tokyo Haneda International Airport", City: "Tokyo", Country: "Japan"},
	"HNL": {Name: "Daniel K Inouye International Airport", City: "Honolulu", Country: "United States"},
	"IAD": {Name: "Washington Dulles International Airport", City: "Washington", Country: "United States"},
	"IAH": {Name: "George Bush Intercontinental Houston Airport", City: "Houston", Country: "United States"},
	"ICN": {Name: "Incheon International Airport", City: "Seoul", Country: "South Korea"},
	"IST": {Name: "Istanbul Airport", City: "Istanbul", Country: "Turkey"},
	"JFK": {Name: "John F Kennedy International Airport", City: "New York", Country: "United States"},
	"JNB": {Name: "OR Tambo International Airport", City: "Johannesburg", Country: "South Africa"},
	"KEF": {Name: "Keflavik International Airport", City: "Reykjavik", Country: "Iceland"},
	"KUL": {Name: "Kuala Lumpur International Airport", City: "Kuala Lumpur", Country: "Malaysia"},
	"LAS": {Name: "Harry Reid International Airport", City: "Las Vegas", Country: "United States"},
	"LAX": {Name: "Los Angeles International Airport", City: "Los Angeles", Country: "United States"},
	"LGA": {Name: "LaGuardia Airport", City: "New York", Country: "United States"},
	"LGW": {Name: "London Gatwick Airport", City: "London", Country: "United Kingdom"},
	"LHR": {Name: "London Heathrow Airport", City: "London", Country: "United Kingdom"},
	"LIM": {Name: "Jorge Chavez International Airport", City: "Lima", Country: "Peru"},
	"LIS": {Name: "Humberto Delgado Airport", City: "Lisbon", Country: "Portugal"},
	"MAD": {Name: "Adolfo Suarez Madrid-Barajas Airport", City: "Madrid", Country: "Spain"},
	"MAN": {Name: "Manchester Airport", City: "Manchester", Country: "United Kingdom"},
	"MCO": {Name: "Orlando International Airport", City: "Orlando", Country: "United States"},
	"MEL": {Name: "Melbourne International Airport", City: "Melbourne", Country: "Australia"},
	"MEX": {Name: "Benito Juarez International Airport", City: "Mexico City", Country: "Mexico"},
	"MIA": {Name: "Miami International Airport", City: "Miami", Country: "United States"},
	"MSP": {Name: "Minneapolis-St Paul International Airport", City: "Minneapolis", Country: "United States"},
	"MUC": {Name: "Munich Airport", City: "Munich", Country: "Germany"},
	"NRT": {Name: "Narita International Airport", City: "Tokyo", Country: "Japan"},
	"OAK": {Name: "Metropolitan Oakland International Airport", City: "Oakland", Country: "United States"},
	"ORD": {Name: "Chicago O'Hare International Airport", City: "Chicago", Country: "United States"},
	"OSL": {Name: "Oslo Gardermoen Airport", City: "Oslo", Country: "Norway"},
	"PDX": {Name: "Portland International Airport", City: "Portland", Country: "United States"},
	"PEK": {Name: "Beijing Capital International Airport", City: "Beijing", Country: "China"},
	"PHL": {Name: "Philadelphia International Airport", City: "Philadelphia", Country: "United States"},
	"PHX": {Name: "Phoenix Sky Harbor International Airport", City: "Phoenix", Country: "United States"},
	"PRG": {Name: "Vaclav Havel Airport Prague", City: "Prague", Country: "Czech Republic"},
	"PVG": {Name: "Shanghai Pudong International Airport", City: "Shanghai", Country: "China"},
	"SAN": {Name: "San Diego International Airport", City: "San Diego", Country: "United States"},
	"SCL": {Name: "Comodoro Arturo Merino Benitez International Airport", City: "Santiago", Country: "Chile"},
	"SEA": {Name: "Seattle Tacoma International Airport", City: "Seattle", Country: "United States"},
	"SFO": {Name: "San Francisco International Airport", City: "San Francisco", Country: "United States"},
	"SIN": {Name: "Singapore Changi Airport", City: "Singapore", Country: "Singapore"},
	"SJC": {Name: "Norman Y Mineta San Jose International Airport", City: "San Jose", Country: "United States"},
	"SLC": {Name: "Salt Lake City International Airport", City: "Salt Lake City", Country: "United States"},
	"STL": {Name: "St Louis Lambert International Airport", City: "St Louis", Country: "United States"},
	"SYD": {Name: "Sydney Kingsford Smith International Airport", City: "Sydney", Country: "Australia"},
	"TLV": {Name: "Ben Gurion International Airport", City: "Tel Aviv", Country: "Israel"},
	"TPA": {Name: "Tampa International Airport", City: "Tampa", Country: "United States"},
	"TPE": {Name: "Taiwan Taoyuan International Airport", City: "Taipei", Country: "Taiwan"},
	"VIE": {Name: "Vienna International Airport", City: "Vienna", Country: "Austria"},
	"WAW": {Name: "Warsaw Chopin Airport", City: "Warsaw", Country: "Poland"},
	"YUL": {Name: "Montreal Pierre Elliott Trudeau International Airport", City: "Montreal", Country: "Canada"},
	"YVR": {Name: "Vancouver International Airport", City: "Vancouver", Country: "Canada"},
	"YYZ": {Name: "Lester B Pearson International Airport", City: "Toronto", Country: "Canada"},
	"ZRH": {Name: "Zurich Airport", City: "Zurich", Country: "Switzerland"},
}
