// Package domain contains the core entities and value objects of the
// vocabulary practice system: catalog cards, per-learner review progress,
// recall ratings, and pronunciation match results. The types here carry
// their own validation and are independent of storage, transport, and the
// scoring engines built on top of them.
package domain
