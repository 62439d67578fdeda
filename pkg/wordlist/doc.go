// Package wordlist ships curated word pools as compiled-in data for use with
// the diceware generator. Nothing is read from disk or the network; the
// lists are plain Go slices and the accessors return fresh copies, so the
// canonical data cannot be mutated by callers.
//
//	gen, err := diceware.New(wordlist.Memorable(), diceware.NewCryptoSource())
package wordlist
