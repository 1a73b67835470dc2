// Package mods turns raw item text into structured items and value records.
//
// Two inputs are understood: the explicit mod lines returned by the trade
// site, and the full description the game places on the clipboard.
//
// # Usage
//
//	item, err := mods.ParseClipboard(text)
//	if errors.Is(err, mods.ErrNotUnique) {
//		return
//	}
//	rec := mods.ParseValues("exile", item)
package mods
