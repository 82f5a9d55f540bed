package swagger

// @Tag.name Badge Meta
// @Tag.description Operational probes and metadata about the badge service.

// @Tag.name Badges
// @Tag.description The public SVG badge.

// @Tag.name Badge Operators
// @Tag.description Operator authentication and the live event tail.

// @Tag.name Badge Cache
// @Tag.description Inspect and purge cached badge state.
