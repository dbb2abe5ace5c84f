package core

// Static lookup tables used by the query compilers. They are read-only.

// KoreaCarrierShortlist applies to every Korea-bound route regardless of origin.
const KoreaCarrierShortlist = "[Korea routes] Prioritize: Korean Air (KE), Asiana Airlines (OZ), Tigerair Taiwan (IT), China Airlines (CI), EVA Air (BR), T'way Air (TW), Jeju Air (7C), Air Busan (BX), Jin Air (LJ)."

var koreaDestinations = map[Destination]bool{
	DestinationSeoul: true,
	DestinationBusan: true,
	DestinationJeju:  true,
}

// originCarrierShortlists holds the unrestricted-airline shortlist for each
// domestic origin on non-Korea routes.
var originCarrierShortlists = map[Departure]string{
	DepartureTPE: "Include every airline flying out of Taoyuan: Starlux, EVA Air, China Airlines, Cathay Pacific, Peach, Scoot, Jetstar, Thai Vietjet, Batik Air, AirAsia, Korean Air (KE), Asiana (OZ) and others.",
	DepartureTSA: "Focus on airlines flying out of Songshan (Haneda/Gimpo routes): China Airlines, EVA Air, Japan Airlines (JAL), All Nippon Airways (ANA), T'way Air.",
	DepartureRMQ: "Focus on airlines flying out of Taichung: Mandarin Airlines, Tigerair Taiwan, Thai Vietjet.",
	DepartureKHH: "Focus on airlines flying out of Kaohsiung: Tigerair Taiwan, Peach, China Airlines, EVA Air, Cathay Pacific, AirAsia, Batik Air, T'way Air, Jeju Air.",
}

var cabinDirectives = map[CabinClass]string{
	CabinEconomy:  "Economy class for both legs; quote economy fares only.",
	CabinBusiness: "Business class for both legs; quote business class fares only.",
	CabinMixed:    "Mixed cabin: outbound in economy class, return in business class. Compute and quote the total price of this mixed-cabin round trip.",
}

// accommodationRequirements is the extra requirement text per lodging type.
// Types not listed have no extra requirement.
var accommodationRequirements = map[AccommodationType]string{
	AccomNearSubway:  "Key requirement: must be within a 5-minute walk of a major subway station. State the exit number and walking minutes in the \"subway\" field.",
	AccomNearAirport: "Key requirement: must offer a free airport shuttle or sit next to an airport express station. Describe the shuttle in \"description\".",
	AccomResort:      "Key requirement: must have a large public bath, onsen (hot spring) or spa/resort facilities.",
}

// AccommodationRequirement returns the extra requirement for a lodging type,
// or "" when the type has none.
func AccommodationRequirement(t AccommodationType) string {
	return accommodationRequirements[t]
}

// IsKoreaRoute reports whether the destination uses the Korea shortlist.
func IsKoreaRoute(d Destination) bool {
	return koreaDestinations[d]
}
