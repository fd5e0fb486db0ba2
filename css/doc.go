// Package css emits the single @font-face block this program produces,
// matching the original bdusell/webfont-generator css.py byte for byte:
// the eot-first special case, the seven-space continuation indent, and the
// exact escaping rules for CSS strings and CSS urls.
package css
