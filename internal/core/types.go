package core

// Key is a canonical anagram key: the sorted, lower-cased,
// ASCII-alphanumeric subsequence of a text. Two texts are anagrams
// of each other exactly when their keys are equal.
type Key string
