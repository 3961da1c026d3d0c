package model

// Package model defines domain data structures used across the app: notes,
// creation drafts, the color palette, load states and banners. Structures are
// plain values so the UI can copy and compare them freely.
