package domain

import "fmt"

// Generalize returns the least specific Phonet that describes both a and b.
//
// For two Phonets of the same variant every field keeps its value where
// the inputs agree and becomes Unmarked where they differ. A consonant and
// a vowel only share voicing, so the result is a vowel with every other
// field Unmarked. The operation is commutative in both cases.
func Generalize(a, b Phonet) Phonet {
	switch a := a.(type) {
	case Consonant:
		switch b := b.(type) {
		case Consonant:
			return Consonant{
				VocalFolds: meet(a.VocalFolds, b.VocalFolds, UnmarkedVocalFolds),
				Place:      meet(a.Place, b.Place, UnmarkedPlace),
				Manner:     meet(a.Manner, b.Manner, UnmarkedManner),
				Airstream:  meet(a.Airstream, b.Airstream, UnmarkedAirstream),
			}
		case Vowel:
			return Generalize(b, a)
		}
	case Vowel:
		switch b := b.(type) {
		case Vowel:
			return Vowel{
				Height:     meet(a.Height, b.Height, UnmarkedHeight),
				Backness:   meet(a.Backness, b.Backness, UnmarkedBackness),
				Rounding:   meet(a.Rounding, b.Rounding, UnmarkedRounding),
				VocalFolds: meet(a.VocalFolds, b.VocalFolds, UnmarkedVocalFolds),
			}
		case Consonant:
			return Vowel{VocalFolds: meet(a.VocalFolds, b.VocalFolds, UnmarkedVocalFolds)}
		}
	}
	panic(fmt.Sprintf("domain: generalize of unknown phonets %T and %T", a, b))
}

// GeneralizeAll folds Generalize over ps from the left.
func GeneralizeAll(ps ...Phonet) (Phonet, error) {
	if len(ps) == 0 {
		return nil, fmt.Errorf("%w: nothing to generalize", ErrInvalidInput)
	}
	acc := ps[0]
	for _, p := range ps[1:] {
		acc = Generalize(acc, p)
	}
	return acc, nil
}

func meet[T comparable](a, b, unmarked T) T {
	if a == b {
		return a
	}
	return unmarked
}

// Enumerate expands every Unmarked field of p into all marked values of
// its dimension and returns the Cartesian product.
//
// Consonants iterate place (outermost), vocal folds, manner, airstream;
// vowels iterate height, backness, rounding, vocal folds. A fully marked
// Phonet enumerates to itself.
func Enumerate(p Phonet) []Phonet {
	switch p := p.(type) {
	case Consonant:
		places := expand(p.Place, UnmarkedPlace, placeStates)
		folds := expand(p.VocalFolds, UnmarkedVocalFolds, vocalFoldsStates)
		manners := expand(p.Manner, UnmarkedManner, mannerStates)
		airstreams := expand(p.Airstream, UnmarkedAirstream, airstreamStates)

		out := make([]Phonet, 0, len(places)*len(folds)*len(manners)*len(airstreams))
		for _, pl := range places {
			for _, vf := range folds {
				for _, m := range manners {
					for _, a := range airstreams {
						out = append(out, Consonant{VocalFolds: vf, Place: pl, Manner: m, Airstream: a})
					}
				}
			}
		}
		return out
	case Vowel:
		heights := expand(p.Height, UnmarkedHeight, heightStates)
		backs := expand(p.Backness, UnmarkedBackness, backnessStates)
		rounds := expand(p.Rounding, UnmarkedRounding, roundingStates)
		folds := expand(p.VocalFolds, UnmarkedVocalFolds, vocalFoldsStates)

		out := make([]Phonet, 0, len(heights)*len(backs)*len(rounds)*len(folds))
		for _, h := range heights {
			for _, b := range backs {
				for _, r := range rounds {
					for _, vf := range folds {
						out = append(out, Vowel{Height: h, Backness: b, Rounding: r, VocalFolds: vf})
					}
				}
			}
		}
		return out
	default:
		return nil
	}
}

func expand[T comparable](v, unmarked T, all []T) []T {
	if v == unmarked {
		return all
	}
	return []T{v}
}

// Matches reports whether p is of the same kind as pattern and agrees with
// every field pattern marks. Fields pattern leaves Unmarked accept any value
// in p, Unmarked included, so Matches(Vowel{}, ə) holds even though ə has no
// rounding. For fully marked p this is membership in Enumerate(pattern).
func Matches(pattern, p Phonet) bool {
	switch pat := pattern.(type) {
	case Consonant:
		c, ok := p.(Consonant)
		if !ok {
			return false
		}
		return fieldMatches(pat.VocalFolds, c.VocalFolds, UnmarkedVocalFolds) &&
			fieldMatches(pat.Place, c.Place, UnmarkedPlace) &&
			fieldMatches(pat.Manner, c.Manner, UnmarkedManner) &&
			fieldMatches(pat.Airstream, c.Airstream, UnmarkedAirstream)
	case Vowel:
		v, ok := p.(Vowel)
		if !ok {
			return false
		}
		return fieldMatches(pat.Height, v.Height, UnmarkedHeight) &&
			fieldMatches(pat.Backness, v.Backness, UnmarkedBackness) &&
			fieldMatches(pat.Rounding, v.Rounding, UnmarkedRounding) &&
			fieldMatches(pat.VocalFolds, v.VocalFolds, UnmarkedVocalFolds)
	default:
		return false
	}
}

func fieldMatches[T comparable](pattern, v, unmarked T) bool {
	return pattern == unmarked || pattern == v
}
