package cmd

const rootLongDescription = `Picket selects nodes from a build graph manifest using selector
expressions.

A specifier is [@][N+|+]method:pattern[+[N]]. Methods: fqn, tag, path,
package, kind. A specifier without a method prefix selects by path when it
looks like a path and by FQN otherwise. Graph operators widen the match
along dependency edges:

  +model      the model and its ancestors
  model+      the model and its descendants
  2+model     ancestors up to two levels
  @model      the model, its descendants, and all their ancestors

Multiple specifiers unite; comma-separated atoms inside one specifier
intersect:

  picket select -s tag:nightly -s "path:models/core/*,tag:hourly"

Named selectors live in a selectors file (selectors.yml by default) and are
referenced with --selector.`

const selectLongDescription = `Evaluate a selection against the manifest and print the matching nodes.

Inclusion comes from a --selector name, --select specifiers, or the
selectors file's default selector, in that order of precedence; with none
of those every node is selected. --exclude specifiers narrow the result
afterwards. An exclude pattern that matches nothing excludes nothing.`

const listLongDescription = `Print every node of the manifest with its kind, tags, and path.`

const viewLongDescription = `Evaluate a selection and browse the result in an interactive list.

Takes the same selection flags as select. On a non-terminal output the
list is printed instead.`
