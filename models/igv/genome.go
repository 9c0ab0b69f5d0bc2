package igv

// ReferenceGenome
// https://github.com/igvteam/igv.js/wiki/Reference-Genome
type ReferenceGenome struct {
	Widget

	Id              string            `json:"id"`
	Name            string            `json:"name"`
	FastaURL        string            `json:"fastaURL"`
	IndexURL        string            `json:"indexURL"`
	CytobandURL     string            `json:"cytobandURL"`
	AliasURL        string            `json:"aliasURL"`
	Indexed         bool              `json:"indexed"`
	Tracks          []Track           `json:"tracks"`
	ChromosomeOrder string            `json:"chromosomeOrder"`
	Headers         map[string]string `json:"headers"`
	WholeGenomeView bool              `json:"wholeGenomeView"`
}

func NewReferenceGenome() *ReferenceGenome {
	return &ReferenceGenome{
		Widget:          newWidget("ReferenceGenomeModel", "ReferenceGenomeView", MODULE_NAME),
		Headers:         map[string]string{},
		WholeGenomeView: true,
	}
}

// SearchService describes an external locus search endpoint.
type SearchService struct {
	Widget

	Url             string `json:"url"`
	ResultsField    string `json:"resultsField"`
	Coords          int    `json:"coords"` // 0 or 1 based
	ChromosomeField string `json:"chromosomeField"`
	StartField      string `json:"startField"`
	EndField        string `json:"endField"`
}

func NewSearchService() *SearchService {
	return &SearchService{
		Widget:          newWidget("SearchServiceModel", "SearchServiceView", MODULE_NAME),
		Coords:          1,
		ChromosomeField: "chromosome",
		StartField:      "start",
		EndField:        "end",
	}
}
