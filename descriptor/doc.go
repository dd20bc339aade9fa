// Package descriptor reads archetype script documents into an in-memory
// tree.
//
// A document is consumed as a stream of markup events (element open with
// attributes, character data, element close) from an [EventSource]. The
// events usually come from [NewXMLSource], but any tokenizer can drive
// [Read]:
//
//	script, err := descriptor.ReadXML(ctx, f)
//
// The reader keeps a stack of open elements. Each frame records a
// [Position] in the document grammar and the node under construction, so
// an opening element is checked against the children allowed at the
// current position, and character data is routed by position to the field
// it belongs to. Text is collected per element and applied, trimmed, when
// the element closes.
//
// Conditions found in if and unless attributes are kept as raw expression
// text. They are parsed and evaluated with package lang by whoever walks
// the tree.
//
// Only the output declared directly under the root element becomes
// [Script.Output]. Outputs nested under steps, inputs, and options stay
// attached to their owners.
package descriptor
