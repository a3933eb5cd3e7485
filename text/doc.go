// Package text loads fonts for the avatar renderer.
//
// A [FontSource] is parsed once and hands out x/image font.Face values at
// any pixel size. [MultiFace] chains several sources so that runes missing
// from the primary font (emoji, symbols) fall back to the next source that
// covers them. [Regular] and [Bold] return the embedded Go fonts.
package text
