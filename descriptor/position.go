package descriptor

//go:generate go tool stringer --linecomment --type Position --output position_string.go

// Position identifies where in the document grammar the reader currently is.
// It selects both the elements allowed to open next and the field that
// receives character data.
type Position int

const (
	PositionDocument       Position = iota // document
	PositionScript                         // archetype-script
	PositionHelp                           // help
	PositionExec                           // exec
	PositionSource                         // source
	PositionStep                           // step
	PositionContext                        // context
	PositionContextText                    // context/text
	PositionContextBoolean                 // context/boolean
	PositionContextEnum                    // context/enum
	PositionContextList                    // context/list
	PositionContextValue                   // context/value
	PositionInput                          // input
	PositionInputText                      // input/text
	PositionInputBoolean                   // input/boolean
	PositionInputEnum                      // input/enum
	PositionInputList                      // input/list
	PositionOption                         // option
	PositionOutput                         // output
	PositionTransformation                 // output/transformation
	PositionReplace                        // output/transformation/replace
	PositionFile                           // output/file
	PositionFiles                          // output/files
	PositionTemplate                       // output/template
	PositionTemplates                      // output/templates
	PositionDirectory                      // directory
	PositionIncludes                       // includes
	PositionInclude                        // includes/include
	PositionExcludes                       // excludes
	PositionExclude                        // excludes/exclude
	PositionModel                          // model
	PositionModelValue                     // model/value
	PositionModelList                      // model/list
	PositionModelMap                       // model/map
)
