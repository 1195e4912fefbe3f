package tetris

// Shuffler permutes n elements through swap. *math/rand/v2.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Bag is a 7-bag randomizer: every run of seven draws starting at a bag
// boundary yields each kind exactly once.
type Bag struct {
	sequence [KindCount]Kind
	cursor   int
	rng      Shuffler
}

// NewBag returns a freshly shuffled bag drawing its permutations from rng.
func NewBag(rng Shuffler) Bag {
	b := Bag{rng: rng}
	b.Reshuffle()
	return b
}

// Next draws the next kind, reshuffling once the bag is exhausted.
func (b *Bag) Next() Kind {
	k := b.sequence[b.cursor]
	b.cursor++
	if b.cursor >= KindCount {
		b.shuffle()
		b.cursor = 0
	}
	return k
}

// Peek returns the kind Next would return without drawing it.
func (b *Bag) Peek() Kind {
	return b.sequence[b.cursor]
}

// Reshuffle discards the remainder of the current bag and starts a new one.
func (b *Bag) Reshuffle() {
	b.sequence = Kinds()
	b.cursor = 0
	b.shuffle()
}

// Sequence returns the current permutation and cursor.
func (b *Bag) Sequence() ([KindCount]Kind, int) {
	return b.sequence, b.cursor
}

func (b *Bag) shuffle() {
	if b.rng == nil {
		return
	}
	b.rng.Shuffle(len(b.sequence), func(i, j int) {
		b.sequence[i], b.sequence[j] = b.sequence[j], b.sequence[i]
	})
}
