package seed

// JSON schemas the embedded fixtures are validated against before decode.
// A fixture that drifts from the data model fails Load instead of producing
// a half-populated catalog.

const actorsSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "email", "name", "role", "createdAt"],
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "email": {"type": "string", "minLength": 3},
      "name": {"type": "string", "minLength": 1},
      "role": {"enum": ["seeker", "recruiter"]},
      "createdAt": {"type": "string", "format": "date-time"},
      "seeker": {
        "type": "object",
        "required": ["skills", "preferences", "skillScore"],
        "properties": {
          "skills": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["name", "level"],
              "properties": {
                "name": {"type": "string", "minLength": 1},
                "level": {"type": "integer", "minimum": 1, "maximum": 5},
                "endorsements": {"type": "integer", "minimum": 0}
              }
            }
          },
          "experience": {"type": "string"},
          "bio": {"type": "string"},
          "location": {"type": "string"},
          "preferences": {
            "type": "object",
            "properties": {
              "jobTypes": {"type": "array", "items": {"type": "string"}},
              "industries": {"type": "array", "items": {"type": "string"}},
              "minSalary": {"type": "integer", "minimum": 0},
              "remoteOnly": {"type": "boolean"}
            }
          },
          "skillScore": {"type": "integer", "minimum": 0, "maximum": 100}
        }
      },
      "recruiter": {
        "type": "object",
        "required": ["company"],
        "properties": {
          "company": {"type": "string", "minLength": 1},
          "position": {"type": "string"},
          "companyDescription": {"type": "string"},
          "industry": {"type": "string"}
        }
      }
    }
  }
}`

const jobsSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "title", "company", "recruiterId", "salary", "type", "postedAt", "expiresAt", "status", "applicants"],
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "title": {"type": "string", "minLength": 1},
      "company": {"type": "string", "minLength": 1},
      "recruiterId": {"type": "string", "minLength": 1},
      "location": {"type": "string"},
      "description": {"type": "string"},
      "requirements": {"type": "array", "items": {"type": "string"}},
      "salary": {
        "type": "object",
        "required": ["min", "max", "period"],
        "properties": {
          "min": {"type": "integer", "minimum": 0},
          "max": {"type": "integer", "minimum": 0},
          "period": {"enum": ["hourly", "daily", "weekly", "monthly"]}
        }
      },
      "type": {"enum": ["part-time", "temporary", "contract", "internship"]},
      "remote": {"type": "boolean"},
      "postedAt": {"type": "string", "format": "date-time"},
      "expiresAt": {"type": "string", "format": "date-time"},
      "status": {"enum": ["open", "filled", "closed"]},
      "applicants": {"type": "array", "items": {"type": "string"}}
    }
  }
}`

const applicationsSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "jobId", "seekerId", "appliedAt", "coverLetter", "status"],
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "jobId": {"type": "string", "minLength": 1},
      "seekerId": {"type": "string", "minLength": 1},
      "appliedAt": {"type": "string", "format": "date-time"},
      "coverLetter": {"type": "string", "minLength": 1},
      "status": {"enum": ["pending", "viewed", "accepted", "rejected"]},
      "notes": {"type": "string"}
    }
  }
}`

const notificationsSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "actorId", "type", "relatedId", "message", "read", "createdAt"],
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "actorId": {"type": "string", "minLength": 1},
      "type": {"enum": ["new-application", "application-viewed", "application-accepted", "application-rejected", "new-message"]},
      "relatedId": {"type": "string"},
      "message": {"type": "string", "minLength": 1},
      "read": {"type": "boolean"},
      "createdAt": {"type": "string", "format": "date-time"}
    }
  }
}`
