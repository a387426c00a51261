// Package corpus counts word frequencies in speech-corpus transcript files.
package corpus
