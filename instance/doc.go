// Package instance holds the input of the outpost-lighting puzzle and the
// plain-text codec for it.
//
// 🚀 What is an instance?
//
//	n outposts and m lanterns sit on a line, both given as sorted integer
//	coordinates. A plan switches lanterns on in at most t contiguous
//	"bursts" (ranges of lantern indices) whose total length is at most k.
//	The puzzle asks for the smallest radius s such that every outpost is
//	within s of some switched-on lantern.
//
// ✨ Wire format:
//
//	n m k t
//	a1 a2 … an
//	b1 b2 … bm
//
// Tokens may be split by any whitespace; Read does not care about lines.
// Several instances may follow each other in one stream (see Decoder).
//
// ⚙️ Usage:
//
//	inst, err := instance.Read(os.Stdin)
//	if err != nil {
//	  // handle ErrMalformedInput / ErrTruncatedInput
//	}
//	if err = instance.Validate(inst, instance.DefaultLimits()); err != nil {
//	  // handle ErrOutOfRange / ErrNotSorted
//	}
package instance
