// Package glossary identifies domain-vocabulary occurrences in text and
// renders them as annotated markup. Matching and rendering are pure
// functions; the term dictionary is a read-only snapshot for the duration
// of a call.
package glossary

// defaultTerms is the built-in legal glossary. Keys are lowercase; store
// entries override these on key collision.
var defaultTerms = map[string]string{
	"plaintiff":       "The person or party who brings a lawsuit to court",
	"defendant":       "The person or party being sued or accused in a court case",
	"jurisdiction":    "The official power to make legal decisions and judgments",
	"liability":       "Legal responsibility for something, especially for damages or debt",
	"indemnify":       "To compensate someone for harm or loss",
	"arbitration":     "The use of an arbitrator to settle a dispute outside of court",
	"breach":          "A violation or breaking of a law, obligation, or agreement",
	"covenant":        "A formal agreement or promise in a contract",
	"damages":         "Money claimed by or awarded to a person in compensation for loss or injury",
	"force majeure":   "Unforeseeable circumstances that prevent someone from fulfilling a contract",
	"indemnification": "Security or protection against a loss or other financial burden",
	"injunction":      "A court order requiring someone to do or stop doing something",
	"lien":            "A legal right to keep possession of property until a debt is paid",
	"litigation":      "The process of taking legal action through the courts",
	"negligence":      "Failure to take proper care in doing something",
	"precedent":       "An earlier event or action used as an example or guide",
	"remedy":          "A means of legal reparation",
	"statute":         "A written law passed by a legislative body",
	"tort":            "A wrongful act or infringement of a right leading to legal liability",
	"warranty":        "A written guarantee promising to repair or replace a product",
	"affidavit":       "A written statement confirmed by oath for use as evidence in court",
	"allegation":      "A claim that someone has done something illegal or wrong",
	"appellant":       "A person who applies to a higher court for a reversal of a decision",
	"bailiff":         "An officer in a court of law who keeps order",
	"certiorari":      "A writ by which a higher court reviews a decision of a lower court",
	"consideration":   "Something of value exchanged between parties in a contract",
	"deposition":      "The process of giving sworn evidence",
	"estoppel":        "A principle that prevents someone from contradicting previous statements",
	"fiduciary":       "A person who holds a legal or ethical relationship of trust",
	"garnishment":     "A legal process for collecting a debt by taking money from wages",
	"hearsay":         "Information received from others that cannot be substantiated",
	"intestate":       "Having made no valid will",
	"jurisprudence":   "The theory or philosophy of law",
	"malfeasance":     "Wrongdoing, especially by a public official",
	"notary":          "A person authorized to perform certain legal formalities",
	"ordinance":       "A piece of legislation enacted by a municipal authority",
	"perjury":         "The offense of willfully telling an untruth in court",
	"probate":         "The official proving of a will",
	"subpoena":        "A writ ordering a person to attend a court",
	"testator":        "A person who has made a will",
	"venue":           "The place where a trial or other legal proceeding is held",
}

// DefaultTerms returns a copy of the built-in legal glossary.
func DefaultTerms() map[string]string {
	terms := make(map[string]string, len(defaultTerms))
	for term, explanation := range defaultTerms {
		terms[term] = explanation
	}
	return terms
}
