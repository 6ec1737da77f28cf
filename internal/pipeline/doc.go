/*
Pipeline drives one message at a time through the trading core.

# Stages
 1. decode: tag=value message -> field map -> typed new order view
 2. construct: order entity with validated economic fields
 3. check: pre-trade risk limits, read-only
 4. ack -> position commit -> fill lifecycle transitions

# Failure
Every stage fails with a typed error. The driver catches it per message,
moves the order (when one exists) to Rejected, emits a rejection event and
continues with the next message. A single malformed message never aborts
the batch.
*/
package pipeline
