package score

// letterFrequency holds relative English letter frequencies (percent),
// indexed by letter-'A'. E is the most common at 12.702, Z the rarest
// at 0.074.
var letterFrequency = [26]float64{
	8.167,  // A
	1.492,  // B
	2.782,  // C
	4.253,  // D
	12.702, // E
	2.228,  // F
	2.015,  // G
	6.094,  // H
	6.966,  // I
	0.153,  // J
	0.772,  // K
	4.025,  // L
	2.406,  // M
	6.749,  // N
	7.507,  // O
	1.929,  // P
	0.095,  // Q
	5.987,  // R
	6.327,  // S
	9.056,  // T
	2.758,  // U
	0.978,  // V
	2.360,  // W
	0.150,  // X
	1.974,  // Y
	0.074,  // Z
}

// commonBigrams are the highest-frequency English letter pairs. Any
// overlapping two-letter window matching one earns the bigram bonus.
var commonBigrams = map[string]bool{
	"TH": true, "HE": true, "IN": true, "ER": true, "AN": true,
	"RE": true, "ON": true, "AT": true, "EN": true, "ND": true,
	"TI": true, "ES": true, "OR": true, "TE": true, "OF": true,
	"ED": true, "IS": true, "IT": true, "AL": true, "AR": true,
	"ST": true, "TO": true, "NT": true, "NG": true, "SE": true,
	"HA": true, "AS": true, "OU": true, "IO": true, "LE": true,
	"VE": true, "CO": true, "ME": true, "DE": true, "HI": true,
	"RI": true, "RO": true, "IC": true, "NE": true, "EA": true,
	"RA": true, "CE": true,
}

// commonTrigrams are the highest-frequency English letter triples.
var commonTrigrams = map[string]bool{
	"THE": true, "AND": true, "ING": true, "HER": true, "HAT": true,
	"HIS": true, "THA": true, "ERE": true, "FOR": true, "ENT": true,
	"ION": true, "TER": true, "WAS": true, "YOU": true, "ITH": true,
	"VER": true, "ALL": true, "WIT": true, "THI": true, "TIO": true,
	"EVE": true, "OUR": true, "EST": true, "HES": true, "ATI": true,
	"MEN": true, "NDE": true, "HAS": true, "NCE": true, "STH": true,
}

// commonWords are whitespace-delimited tokens that earn the word bonus.
// Beyond everyday English function words, the list carries the Kryptos
// clue vocabulary (EAST, NORTHEAST, BERLIN, CLOCK) so a decryption that
// surfaces a known crib ranks sharply higher.
var commonWords = map[string]bool{
	// Articles/conjunctions/prepositions
	"THE": true, "OF": true, "AND": true, "A": true, "TO": true,
	"IN": true, "IS": true, "IT": true, "FOR": true, "ON": true,
	"AS": true, "AT": true, "BY": true, "OR": true, "AN": true,
	"BE": true, "IF": true, "FROM": true, "WITH": true, "NOT": true,
	// Pronouns/verbs
	"YOU": true, "THAT": true, "HE": true, "WAS": true, "ARE": true,
	"HIS": true, "THEY": true, "I": true, "THIS": true, "HAVE": true,
	"WE": true, "SHE": true, "HAD": true, "ONE": true, "WERE": true,
	"ALL": true, "YOUR": true, "CAN": true, "SAID": true, "THERE": true,
	"WHAT": true, "WHEN": true, "WHICH": true, "THEIR": true, "HOW": true,
	// Kryptos clue vocabulary
	"EAST": true, "NORTHEAST": true, "BERLIN": true, "CLOCK": true,
	"TIME": true, "NORTH": true, "WEST": true, "SOUTH": true,
}
