package args

import "fmt"

// Block is the trailing callable of a bundle.
//
// Go functions are not comparable, so a Block is compared by identity:
// two bundles share a block only if they hold the same *Block.
type Block struct {
	fn func(...any) any
}

// NewBlock wraps fn. It returns nil for a nil fn, which New treats as "no block".
func NewBlock(fn func(...any) any) *Block {
	if fn == nil {
		return nil
	}
	return &Block{fn: fn}
}

// Call invokes the wrapped function.
func (b *Block) Call(vals ...any) any {
	return b.fn(vals...)
}

func (b *Block) String() string {
	if b == nil {
		return "<nil>"
	}
	return fmt.Sprintf("block(%p)", b)
}
