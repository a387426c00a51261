// Package dataset downloads speech-corpus transcripts from the Hugging Face
// Hub and keeps them in the local corpus cache.
package dataset
