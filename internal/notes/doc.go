package notes

// Package notes holds the client-side state of the notes list: the records
// fetched from the API, the load state, the search term and the current banner.
// Every mutation is one API call followed by a local update, and every change
// is published to the UI through the update callback.
