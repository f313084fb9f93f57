/*
Package publish orchestrates pushing an extracted project to GitHub.

	            +-------------+
	            |  Publisher  |
	            |   (Flow)    |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|  Hosting  |           | Reporter|
	|  Client   |           | (UI/UX) |
	+-----------+           +---------+

🎯 Purpose:
- Validates config before any network call
- Ensures the target repository exists (creating it once if absent)
- Pushes every enumerated file in priority order
- Accumulates per-file failures into a final summary

🔄 Flow:
1. Validate config (placeholder values abort the run)
2. Look up the repository; create it if the lookup fails
3. Reorder files so priority names go first
4. For each file: fetch the current version token, write, record outcome
5. Pause briefly every ten files to respect the API's rate policy
6. Report the tally and the list of failed paths

📝 Design Philosophy:
Repository-level failures are fatal — there is nothing to push into. File
level failures are not: the run visits every file regardless and the user
decides what to do with the failed list. The version token is fetched
immediately before each write because enumeration and push are temporally
separated and remote state can change in between.
*/
package publish
