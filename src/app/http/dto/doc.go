// Package dto contains Data Transfer Objects for HTTP requests and responses.
//
// DTOs are separate from domain entities to:
//   - Control what data is exposed in the API (the webhook URL never leaves
//     the admin endpoints)
//   - Handle JSON serialization/deserialization
//   - Add validation tags for request binding
//
// Naming convention:
//   - Request types: <Action><Resource>Request (e.g., SaveConfigRequest)
//   - Response types: <Resource>Response (e.g., RecordsResponse)
package dto
