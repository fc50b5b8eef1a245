// Generated from the OpenFlights airlines dataset, trimmed to active IATA
// carriers.
//
// Generation date: 2025-11-02
package ref

var airlineTable = map[string]Airline{
	"AA": {Name: "American Airlines", Country: "United States"},
	"AC": {Name: "Air Canada", Country: "Canada"},
	"AF": {Name: "Air France", Country: "France"},
	"AI": {Name: "Air India", Country: "India"},
	"AM": {Name: "Aeromexico", Country: "Mexico"},
	"AR": {Name: "Aerolineas Argentinas", Country: "Argentina"},
	"AS": {Name: "Alaska Airlines", Country: "United States"},
	"AV": {Name: "Avianca", Country: "Colombia"},
	"AY": {Name: "Finnair", Country: "Finland"},
	"AZ": {Name: "ITA Airways", Country: "Italy"},
	"B6": {Name: "JetBlue Airways", Country: "United States"},
	"BA": {Name: "British Airways", Country: "United Kingdom"},
	"BR": {Name: "EVA Air", Country: "Taiwan"},
	"CA": {Name: "Air China", Country: "China"},
	"CI": {Name: "China Airlines", Country: "Taiwan"},
	"CM": {Name: "Copa Airlines", Country: "Panama"},
	"CX": {Name: "Cathay Pacific", Country: "Hong Kong"},
	"CZ": {Name: "China Southern Airlines", Country: "China"},
	"DL": {Name: "Delta Air Lines", Country: "United States"},
	"EI": {Name: "Aer Lingus", Country: "Ireland"},
	"EK": {Name: "Emirates", Country: "United Arab Emirates"},
	"ET": {Name: "Ethiopian Airlines", Country: "Ethiopia"},
	"EY": {Name: "Etihad Airways", Country: "United Arab Emirates"},
	"F9": {Name: "Frontier Airlines", Country: "United States"},
	"FI": {Name: "Icelandair", Country: "Iceland"},
	"FR": {Name: "Ryanair", Country: "Ireland"},
	"GA": {Name: "Garuda Indonesia", Country: "Indonesia"},
	"HA": {Name: "Hawaiian Airlines", Country: "United States"},
	"IB": {Name: "Iberia", Country: "Spain"},
	"JL": {Name: "Japan Airlines", Country: "Japan"},
	"KE": {Name: "Korean Air", Country: "South Korea"},
	"KL": {Name: "KLM Royal Dutch Airlines", Country: "Netherlands"},
	"LA": {Name: "LATAM Airlines", Country: "Chile"},
	"LH": {Name: "Lufthansa", Country: "Germany"},
	"LO": {Name: "LOT Polish Airlines", Country: "Poland"},
	"LX": {Name: "Swiss International Air Lines", Country: "Switzerland"},
	"MH": {Name: "Malaysia Airlines", Country: "Malaysia"},
	"MS": {Name: "EgyptAir", Country: "Egypt"},
	"MU": {Name: "China Eastern Airlines", Country: "China"},
	"NH": {Name: "All Nippon Airways", Country: "Japan"},
	"NK": {Name: "Spirit Airlines", Country: "United States"},
	"NZ": {Name: "Air New Zealand", Country: "New Zealand"},
	"OS": {Name: "Austrian Airlines", Country: "Austria"},
	"OZ": {Name: "Asiana Airlines", Country: "South Korea"},
	"QF": {Name: "Qantas", Country: "Australia"},
	"QR": {Name: "Qatar Airways", Country: "Qatar"},
	"SA": {Name: "South African Airways", Country: "South Africa"},
	"SK": {Name: "Scandinavian Airlines", Country: "Sweden"},
	"SN": {Name: "Brussels Airlines", Country: "Belgium"},
	"SQ": {Name: "Singapore Airlines", Country: "Singapore"},
	"SU": {Name: "Aeroflot", Country: "Russia"},
	"TG": {Name: "Thai Airways International", Country: "Thailand"},
	"TK": {Name: "Turkish Airlines", Country: "Turkey"},
	"TP": {Name: "TAP Air Portugal", Country: "Portugal"},
	"UA": {Name: "United Airlines", Country: "United States"},
	"UX": {Name: "Air Europa", Country: "Spain"},
	"VA": {Name: "Virgin Australia", Country: "Australia"},
	"VN": {Name: "Vietnam Airlines", Country: "Vietnam"},
	"VS": {Name: "Virgin Atlantic", Country: "United Kingdom"},
	"WN": {Name: "Southwest Airlines", Country: "United States"},
	"WS": {Name: "WestJet", Country: "Canada"},
}
