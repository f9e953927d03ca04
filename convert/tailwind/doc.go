// Package tailwind converts CSS declarations to Tailwind style utility classes.
//
// Input is a loosely formatted block of declarations, one per line, usually
// copied from a design tool inspector:
//
//	/* New/Paragraph/P3 Semibold */
//	display: flex;
//	padding: var(--Spacing-S, 0.25rem) var(--Spacing-M, 0.5rem);
//	background: var(--Blues-Lights-30, #D0DCF0);
//
// # Conversion
//
// Every declaration is looked up in a closed table of property rules. Rules
// never fail, values they do not understand become arbitrary values:
//   - Keywords: display, position, cursor, overflow, alignment... map to
//     fixed classes, unknown keywords give "[property:value]"
//   - Scales: spacing, sizes, radius, font size, opacity, filters, durations
//     map literal values to scale steps, the rest give "prefix-[value]"
//   - Shorthands: padding, margin, inset, border, outline, border-radius,
//     transform, transition, filter, box-shadow, background and gradients
//     are split with respect to parentheses and expanded per side or function
//   - Colors: custom property references name design tokens, so
//     "var(--Blues-Lights-30, #D0DCF0)" gives "bg-blues-lights-30"
//   - Measurements: custom property references are replaced by their
//     fallbacks, so "var(--S, 0.25rem)" gives "p-1"
//
// Unknown properties become "[property:value]".
//
// # Font comment
//
// First comment of the block names typographic style. It is turned into a
// single class placed in front of the others and font-family, font-size,
// font-weight, line-height, letter-spacing and font-style declarations are
// dropped. Blank first comment names nothing.
//
// # Post-processing
//
// Single side padding and margin classes sharing a value are merged into
// axis or uniform classes and moved to the end of the list. Finally, when
// requested, every class which is not arbitrary property and not already
// scoped gets "prefix:" in front of it.
//
// # Usage
//
//	converter := tailwind.NewConverter(logger)
//	classes := converter.Convert(text, tailwind.Options{UsePrefix: true, Prefix: "cv"})
package tailwind
