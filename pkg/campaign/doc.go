// Package campaign adapts persisted campaign records into renderer inputs.
// It is the boundary layer the pure renderers refuse to be: it decodes
// stored section JSON (assigning ids where the authoring surface left them
// empty), builds the flat template engine's token data map from campaign
// fields plus brand identity, and logs the conditions the renderers handle
// silently (unknown section types, undecodable JSON).
//
// Storage itself stays external behind the Store interface; this package
// never touches a database.
package campaign
