// Package airports resolves ICAO codes to aerodrome metadata. The static
// directory covers Kazakhstan and its neighbours; the remote client queries
// the aviationweather.gov airport API for everything else.
package airports

import (
	"context"
	"sort"
	"strings"

	"github.com/couchcryptid/aero-bulletin-etl/internal/domain"
)

const (
	kazakhstan   = "Kazakhstan"
	russia       = "Russia"
	uzbekistan   = "Uzbekistan"
	kyrgyzstan   = "Kyrgyzstan"
	turkmenistan = "Turkmenistan"
	china        = "China"
)

var knownAirports = []domain.Airport{
	{ICAO: "UAAA", IATA: "ALA", Name: "Almaty International", City: "Almaty", Country: kazakhstan},
	{ICAO: "UAAT", IATA: "TDK", Name: "Taldykorgan", City: "Taldykorgan", Country: kazakhstan},
	{ICAO: "UACC", IATA: "NQZ", Name: "Nursultan Nazarbayev International", City: "Astana", Country: kazakhstan},
	{ICAO: "UATT", IATA: "AKX", Name: "Aktobe", City: "Aktobe", Country: kazakhstan},
	{ICAO: "UATG", IATA: "GUW", Name: "Atyrau", City: "Atyrau", Country: kazakhstan},
	{ICAO: "UARR", IATA: "URA", Name: "Oral Ak Zhol", City: "Uralsk", Country: kazakhstan},
	{ICAO: "UAKK", IATA: "KGF", Name: "Sary-Arka", City: "Karaganda", Country: kazakhstan},
	{ICAO: "UAAH", IATA: "BXH", Name: "Balkhash", City: "Balkhash", Country: kazakhstan},
	{ICAO: "UAUU", IATA: "KSN", Name: "Kostanay", City: "Kostanay", Country: kazakhstan},
	{ICAO: "UAOO", IATA: "KZO", Name: "Kyzylorda", City: "Kyzylorda", Country: kazakhstan},
	{ICAO: "UAOL", IATA: "BAY", Name: "Krayniy", City: "Baikonur", Country: kazakhstan},
	{ICAO: "UATE", IATA: "SCO", Name: "Aktau", City: "Aktau", Country: kazakhstan},
	{ICAO: "UASP", IATA: "PWQ", Name: "Pavlodar", City: "Pavlodar", Country: kazakhstan},
	{ICAO: "UACP", IATA: "PPK", Name: "Petropavlovsk", City: "Petropavlovsk", Country: kazakhstan},
	{ICAO: "UAII", IATA: "CIT", Name: "Shymkent", City: "Shymkent", Country: kazakhstan},
	{ICAO: "UATA", IATA: "HSA", Name: "Turkistan", City: "Turkistan", Country: kazakhstan},
	{ICAO: "UASK", IATA: "UKK", Name: "Oskemen", City: "Ust-Kamenogorsk", Country: kazakhstan},
	{ICAO: "UASB", IATA: "SZI", Name: "Semey", City: "Semey", Country: kazakhstan},
	{ICAO: "UADD", IATA: "DMB", Name: "Taraz", City: "Taraz", Country: kazakhstan},

	{ICAO: "UNOO", IATA: "OMS", Name: "Omsk Tsentralny", City: "Omsk", Country: russia},
	{ICAO: "UNNT", IATA: "OVB", Name: "Tolmachevo", City: "Novosibirsk", Country: russia},
	{ICAO: "UNBB", IATA: "BAX", Name: "Barnaul", City: "Barnaul", Country: russia},
	{ICAO: "URWA", IATA: "ASF", Name: "Astrakhan", City: "Astrakhan", Country: russia},
	{ICAO: "URWW", IATA: "VOG", Name: "Volgograd", City: "Volgograd", Country: russia},
	{ICAO: "UWSS", IATA: "RTW", Name: "Saratov", City: "Saratov", Country: russia},
	{ICAO: "UWWW", IATA: "KUF", Name: "Kurumoch", City: "Samara", Country: russia},
	{ICAO: "UWOO", IATA: "REN", Name: "Orenburg", City: "Orenburg", Country: russia},
	{ICAO: "USCC", IATA: "CEK", Name: "Chelyabinsk", City: "Chelyabinsk", Country: russia},
	{ICAO: "USUU", IATA: "KRO", Name: "Kurgan", City: "Kurgan", Country: russia},
	{ICAO: "USTR", IATA: "TJM", Name: "Roshchino", City: "Tyumen", Country: russia},

	{ICAO: "UTTT", IATA: "TAS", Name: "Tashkent International", City: "Tashkent", Country: uzbekistan},
	{ICAO: "UTNU", IATA: "NMA", Name: "Namangan", City: "Namangan", Country: uzbekistan},
	{ICAO: "UTFA", IATA: "FEG", Name: "Fergana", City: "Fergana", Country: uzbekistan},
	{ICAO: "UTSS", IATA: "SKD", Name: "Samarkand", City: "Samarkand", Country: uzbekistan},
	{ICAO: "UTSB", IATA: "BHK", Name: "Bukhara", City: "Bukhara", Country: uzbekistan},
	{ICAO: "UTNN", IATA: "UGC", Name: "Urgench", City: "Urgench", Country: uzbekistan},
	{ICAO: "UTSA", IATA: "AZN", Name: "Andijan", City: "Andijan", Country: uzbekistan},

	{ICAO: "UAFM", IATA: "FRU", Name: "Manas", City: "Bishkek", Country: kyrgyzstan},
	{ICAO: "UCFM", IATA: "OSS", Name: "Osh", City: "Osh", Country: kyrgyzstan},
	{ICAO: "UCFI", IATA: "IKU", Name: "Issyk-Kul", City: "Cholpon-Ata", Country: kyrgyzstan},

	{ICAO: "UTAA", IATA: "ASB", Name: "Ashgabat", City: "Ashgabat", Country: turkmenistan},
	{ICAO: "UTAK", IATA: "KRW", Name: "Turkmenbashi", City: "Turkmenbashi", Country: turkmenistan},
	{ICAO: "UTAV", IATA: "TAZ", Name: "Dashoguz", City: "Dashoguz", Country: turkmenistan},

	{ICAO: "ZWWW", IATA: "URC", Name: "Urumqi Diwopu", City: "Urumqi", Country: china},
	{ICAO: "ZWKL", IATA: "KRL", Name: "Korla", City: "Korla", Country: china},
	{ICAO: "ZWAT", IATA: "AAT", Name: "Altay", City: "Altay", Country: china},
}

// StaticDirectory is an in-memory AirportDirectory. It is read-only after
// construction and safe for concurrent use.
type StaticDirectory struct {
	byICAO map[string]domain.Airport
}

// NewStaticDirectory returns the built-in directory, optionally extended or
// overridden by extra entries.
func NewStaticDirectory(extra ...domain.Airport) *StaticDirectory {
	d := &StaticDirectory{byICAO: make(map[string]domain.Airport, len(knownAirports)+len(extra))}
	for _, a := range knownAirports {
		d.byICAO[a.ICAO] = a
	}
	for _, a := range extra {
		a.ICAO = strings.ToUpper(strings.TrimSpace(a.ICAO))
		if a.ICAO != "" {
			d.byICAO[a.ICAO] = a
		}
	}
	return d
}

func (d *StaticDirectory) LookupAirport(_ context.Context, icao string) (domain.Airport, error) {
	a, ok := d.byICAO[strings.ToUpper(strings.TrimSpace(icao))]
	if !ok {
		return domain.Airport{}, domain.ErrAirportNotFound
	}
	return a, nil
}

// Airports lists the directory sorted by ICAO code.
func (d *StaticDirectory) Airports() []domain.Airport {
	out := make([]domain.Airport, 0, len(d.byICAO))
	for _, a := range d.byICAO {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ICAO < out[j].ICAO })
	return out
}
