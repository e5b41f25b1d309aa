// Package draft resolves label and pointer annotations in instruction drafts.
//
// A draft is a sequence of lines. A line may end with an annotation
// introduced by a separator (default '#'):
//
//	op n 1 n #->loop     pointer to the label "loop"
//	set x 5 #loop        label "loop"
//	op n 1 n #->a #b     pointer to "a" and label "b"
//
// [Finish] runs the passes in order: [Parse] decodes every annotation,
// [Validate] builds the [Index] and checks it, [Resolve] computes a [Fixup]
// per pointer, [Patch] substitutes the fixups into placeholder tokens using
// a [Table], and [Strip] drops the annotations.
package draft
