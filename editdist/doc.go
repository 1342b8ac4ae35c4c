// Package editdist answers whether two words are one character edit apart.
//
// What
//
//   - OneAway reports whether b can be obtained from a by exactly one
//     insertion, deletion, or substitution of a single character.
//   - Distance computes the full Levenshtein distance; it is the slow,
//     general oracle that OneAway must agree with when the answer is 1.
//
// Characters are Unicode code points (runes), not bytes, so "körte" and
// "korte" are one substitution apart even though their UTF-8 encodings
// differ in length. Bytes that are not valid UTF-8 count as one character
// each and only match the identical byte, so malformed input is compared
// exactly rather than collapsed to U+FFFD.
//
// Complexity (L = length in runes)
//
//   - OneAway:  O(L) time, O(L) memory for the rune conversion.
//   - Distance: O(La·Lb) time, O(min(La,Lb)) memory.
//
// Usage
//
//	editdist.OneAway("dog", "hog")  // true  (substitution)
//	editdist.OneAway("coat", "cat") // true  (deletion)
//	editdist.OneAway("coat", "hat") // false (two edits)
//	editdist.OneAway("dog", "dog")  // false (zero edits)
package editdist
