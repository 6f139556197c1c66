// Package domain decodes aviation text bulletins: NOTAMs and TAFs.
//
// # Data Source
//
// Bulletins are collected from aeronautical information services and weather
// providers by upstream collectors, wrapped in a small JSON envelope
// ({"kind", "raw", "source", "icao"}) and published to the Kafka source topic.
// Decoding is pure: no I/O, no shared mutable state, and every call returns a
// fresh record that keeps the exact input text in Raw.
//
// # NOTAM Conventions
//
// Identifier and kind:
//
//	"A1234/24 NOTAMN"  ->  series A, number 1234, year 24, new.
//	NOTAMR replaces and NOTAMC cancels an earlier NOTAM.
//	Text without an identifier is not a NOTAM and produces no record.
//
// Q-line qualifiers (each validated on its own):
//
//	Q) UAAA/QMRLC/IV/NBO/A/000/999/4315N07700E005
//	   FIR / Q-code / traffic / purpose / scope / lower / upper / position+radius
//
// Lettered items:
//
//	A) location   B) start   C) end, PERM or EST   D) schedule
//	E) description (runs to the next F) or G) anchor)   F) lower   G) upper
//	D), F) and G) end at the end of their line.
//
// Datetimes:
//
//	YYMMDDHHmm or YYYYMMDDHHmm, UTC. A two-digit year more than five years
//	ahead of the current year belongs to the previous century.
//	Impossible dates are dropped and noted in the record's anomalies.
//
// Severity:
//
//	Critical: aerodrome, runway or taxiway closed, and ILS unserviceable
//	(exact Q-code match). Warning: partial closures, lighting failures,
//	airspace restrictions and obstacles (first four characters of the code).
//	Any other Q-code is info. Without a Q-code there is no severity.
//
// # TAF Conventions
//
//	TAF [AMD|COR] UAAA 101100Z 1012/1112 32015G25KT 9999 FEW040 BKN100
//	    TEMPO 1014/1018 4000 TSRA BKN020CB
//
// The text before the first change indicator is the baseline forecast.
// Change groups are FMddhhmm, TEMPO, BECMG, PROBnn and PROBnn TEMPO, kept in
// source order. Wind speeds in knots are converted to m/s by multiplying by
// 0.514 and truncating. Cloud heights are hundreds of feet; metres are
// truncated. CAVOK and 9999 both mean 10 km or more.
//
// # ID Generation
//
// Bulletin IDs are deterministic SHA-256 hashes of the kind and key fields
// (NOTAM identifier and location, or TAF station and normalised text), so
// replays produce the same sink key. See [generateID].
package domain
