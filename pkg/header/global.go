package header

// Schema names the header layout produced by nway_processing:
//
//	<species>_Nway<label>_Blast<call>[_<detail>]
//
// A header without either marker is the element consensus record.
const Schema = "nway-blast/v1"

var (
	NwayMarker  = "_Nway"
	BlastMarker = "_Blast"
)

// BlastN details reduced to SymbolUndetermined.
var UndeterminedDetails = []string{
	"wrongTE",
	"BadMatch",
	"TooShort",
}
